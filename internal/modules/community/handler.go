package community

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"travelhub/internal/pkg/response"
	pkgvalidator "travelhub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// ListPosts handles GET /community/posts
func (h *Handler) ListPosts(c *gin.Context) {
	var q ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	viewerID := c.GetInt64("user_id")
	posts, total, err := h.service.ListPosts(c.Request.Context(), viewerID, q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get posts")
		return
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	response.List(c, http.StatusOK, posts, int(total), response.Paginate(page, limit, int(total)))
}

// CreatePost handles POST /community/posts
func (h *Handler) CreatePost(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		var vErr *pkgvalidator.Error
		if errors.As(err, &vErr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid post fields", vErr.Fields)
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// GetPost handles GET /community/posts/:id
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	p, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// LikePost handles POST /community/posts/:id/like
func (h *Handler) LikePost(c *gin.Context) {
	h.togglePost(c, h.service.LikePost, "Post liked")
}

// UnlikePost handles DELETE /community/posts/:id/like
func (h *Handler) UnlikePost(c *gin.Context) {
	h.togglePost(c, h.service.UnlikePost, "Like removed")
}

// BookmarkPost handles POST /community/posts/:id/bookmark
func (h *Handler) BookmarkPost(c *gin.Context) {
	h.togglePost(c, h.service.BookmarkPost, "Post bookmarked")
}

// UnbookmarkPost handles DELETE /community/posts/:id/bookmark
func (h *Handler) UnbookmarkPost(c *gin.Context) {
	h.togglePost(c, h.service.UnbookmarkPost, "Bookmark removed")
}

func (h *Handler) togglePost(c *gin.Context, op func(ctx context.Context, postID, userID int64) error, okMessage string) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := op(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update post")
		return
	}
	response.Message(c, http.StatusOK, okMessage)
}

// ListGroups handles GET /community/groups
func (h *Handler) ListGroups(c *gin.Context) {
	viewerID := c.GetInt64("user_id")

	groups, err := h.service.ListGroups(c.Request.Context(), viewerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get groups")
		return
	}
	response.Success(c, http.StatusOK, groups)
}

// JoinGroup handles POST /community/groups/:id/join
func (h *Handler) JoinGroup(c *gin.Context) {
	h.toggleGroup(c, h.service.JoinGroup, "Joined group")
}

// LeaveGroup handles DELETE /community/groups/:id/join
func (h *Handler) LeaveGroup(c *gin.Context) {
	h.toggleGroup(c, h.service.LeaveGroup, "Left group")
}

func (h *Handler) toggleGroup(c *gin.Context, op func(ctx context.Context, groupID, userID int64) error, okMessage string) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid group ID")
		return
	}

	if err := op(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Group not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update membership")
		return
	}
	response.Message(c, http.StatusOK, okMessage)
}

// Websocket handles GET /community/ws; the socket receives feed events
// pushed through the hub until the client hangs up.
func (h *Handler) Websocket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.hub.Register(userID, conn)

	go func() {
		defer h.hub.Unregister(userID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
