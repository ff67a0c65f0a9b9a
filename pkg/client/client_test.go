package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin_StoresTokenAndSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"token":   "tok-123",
				"data":    User{ID: 7, Email: "maria@gmail.com", Name: "Maria"},
			})
		case "/api/v1/auth/me":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    User{ID: 7, Email: "maria@gmail.com"},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), "maria@gmail.com", "travel123")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "tok-123", c.Token())

	_, err = c.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDo_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "UNAUTHORIZED", "message": "invalid token"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("garbage"))
	_, err := c.Me(context.Background())

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "invalid token")
}

func TestDo_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Destination(context.Background(), 1)

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestDestinations_QueryParamsAndTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/destinations", r.URL.Path)
		assert.Equal(t, "beach", r.URL.Query().Get("category"))
		assert.Equal(t, "rating", r.URL.Query().Get("sort"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []Destination{{ID: 1, Name: "Santorini"}},
			"total":   41,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	list, err := c.Destinations(context.Background(), DestinationListOptions{
		Category: "beach",
		Sort:     "rating",
		Page:     2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 41, list.Total)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, "Santorini", list.Items[0].Name)
}

func TestBooking_DecodesWireBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bookings/12", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{
			"id":12,"user_id":7,"type":"flight","flight_id":3,
			"start_date":"2026-09-10T00:00:00Z","end_date":"2026-09-17T00:00:00Z",
			"passengers":[{"name":"Maria Gonzalez","email":"maria@gmail.com"}],
			"flight_details":{"class":"business","seat_numbers":["12A"]},
			"total_amount":980.5,"currency":"USD",
			"status":"confirmed","payment_status":"paid",
			"booking_reference":"TRV-7H2K9Q"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	b, err := c.Booking(context.Background(), 12)
	assert.NoError(t, err)
	assert.Equal(t, "flight", b.Type)
	assert.Equal(t, int64(3), *b.FlightID)
	assert.Equal(t, "business", b.FlightDetails.Class)
	assert.Equal(t, "Maria Gonzalez", b.Passengers[0].Name)
	assert.Equal(t, "confirmed", b.Status)
	assert.Equal(t, "TRV-7H2K9Q", b.BookingReference)
}

func TestLogout_NoTokenIsNoop(t *testing.T) {
	c := New("http://127.0.0.1:0")
	assert.NoError(t, c.Logout(context.Background()))
}

func TestLogout_DropsTokenEvenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	err := c.Logout(context.Background())
	assert.Error(t, err)
	assert.Empty(t, c.Token())
}

/* ---------- SESSION ---------- */

func TestSession_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	err := SaveSession(path, &Session{
		Token: "tok-abc",
		User:  &User{ID: 3, Email: "james@outlook.com"},
	})
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	s, ok := LoadSession(path)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", s.Token)
	assert.Equal(t, int64(3), s.User.ID)
}

func TestLoadSession_Missing(t *testing.T) {
	s, ok := LoadSession(filepath.Join(t.TempDir(), "nope.json"))
	assert.False(t, ok)
	assert.Nil(t, s)
}

func TestLoadSession_CorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, ok := LoadSession(path)
	assert.False(t, ok)
	assert.Nil(t, s)
}

func TestLoadSession_EmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"token":""}`), 0o600))

	_, ok := LoadSession(path)
	assert.False(t, ok)
}

func TestClearSession_MissingFileOK(t *testing.T) {
	assert.NoError(t, ClearSession(filepath.Join(t.TempDir(), "nope.json")))
}
