package community

import "travelhub/internal/domain"

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,min=5"`
	Content  string   `json:"content" binding:"required,min=10"`
	Images   []string `json:"images"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
}

type ListPostsQuery struct {
	Page     int  `form:"page"`
	Limit    int  `form:"limit"`
	Trending bool `form:"trending"`
}

// PostView decorates a post with the caller's own like/bookmark state.
type PostView struct {
	domain.Post
	Liked      bool `json:"liked"`
	Bookmarked bool `json:"bookmarked"`
}

// GroupView decorates a group with the caller's membership.
type GroupView struct {
	domain.Group
	Joined bool `json:"joined"`
}
