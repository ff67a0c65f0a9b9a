// Package client is a thin typed client for the TravelHub HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx reply decoded from the error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

/* ---------- WIRE ENVELOPES ---------- */

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	Total   int             `json:"total"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}
	return &env, nil
}

func decodeData(env *envelope, out interface{}) error {
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

/* ---------- AUTH ---------- */

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Register creates an account and keeps the returned token on the client.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, req)
	if err != nil {
		return nil, err
	}
	var user User
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	c.token = env.Token
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var user User
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	c.token = env.Token
	return &user, nil
}

// Logout revokes the current token server-side and drops it locally.
// A client with no token logs out as a no-op.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" {
		return nil
	}
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	c.token = ""
	return err
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	var user User
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

/* ---------- DESTINATIONS ---------- */

type DestinationListOptions struct {
	Query    string
	Category string
	Country  string
	Sort     string
	Page     int
	Limit    int
}

type DestinationList struct {
	Items []Destination
	Total int
}

func (c *Client) Destinations(ctx context.Context, opts DestinationListOptions) (*DestinationList, error) {
	q := url.Values{}
	if opts.Query != "" {
		q.Set("q", opts.Query)
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Country != "" {
		q.Set("country", opts.Country)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	env, err := c.do(ctx, http.MethodGet, "/api/v1/destinations", q, nil)
	if err != nil {
		return nil, err
	}
	list := &DestinationList{Total: env.Total}
	if err := decodeData(env, &list.Items); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SearchDestinations(ctx context.Context, query string) ([]Destination, error) {
	q := url.Values{}
	q.Set("q", query)
	env, err := c.do(ctx, http.MethodGet, "/api/v1/destinations/search", q, nil)
	if err != nil {
		return nil, err
	}
	var items []Destination
	if err := decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Destination(ctx context.Context, id int64) (*Destination, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/destinations/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	var d Destination
	if err := decodeData(env, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) PopularDestinations(ctx context.Context, limit int) ([]Destination, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	env, err := c.do(ctx, http.MethodGet, "/api/v1/destinations/popular", q, nil)
	if err != nil {
		return nil, err
	}
	var items []Destination
	if err := decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

/* ---------- BOOKINGS ---------- */

type CreateBookingRequest struct {
	Type            string         `json:"type"`
	FlightID        *int64         `json:"flight_id,omitempty"`
	HotelID         *int64         `json:"hotel_id,omitempty"`
	CarID           *int64         `json:"car_id,omitempty"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	Passengers      []Passenger    `json:"passengers,omitempty"`
	RoomDetails     *RoomDetails   `json:"room_details,omitempty"`
	FlightDetails   *FlightDetails `json:"flight_details,omitempty"`
	SpecialRequests string         `json:"special_requests,omitempty"`
}

type BookingList struct {
	Items []Booking
	Total int
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/bookings", nil, req)
	if err != nil {
		return nil, err
	}
	var b Booking
	if err := decodeData(env, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) MyBookings(ctx context.Context, page, limit int) (*BookingList, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	env, err := c.do(ctx, http.MethodGet, "/api/v1/bookings/my-bookings", q, nil)
	if err != nil {
		return nil, err
	}
	list := &BookingList{Total: env.Total}
	if err := decodeData(env, &list.Items); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Booking(ctx context.Context, id int64) (*Booking, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	var b Booking
	if err := decodeData(env, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64, reason string) (*Booking, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/bookings/%d/cancel", id), nil, map[string]string{
		"reason": reason,
	})
	if err != nil {
		return nil, err
	}
	var b Booking
	if err := decodeData(env, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
