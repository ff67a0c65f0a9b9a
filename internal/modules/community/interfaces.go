package community

import (
	"context"

	"travelhub/internal/domain"
)

// CommunityRepository — only the methods the community service uses
type CommunityRepository interface {
	CreatePost(ctx context.Context, p *domain.Post) error
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	ListPosts(ctx context.Context, trending bool, limit, offset int) ([]domain.Post, int64, error)
	LikePost(ctx context.Context, postID, userID int64) error
	UnlikePost(ctx context.Context, postID, userID int64) error
	BookmarkPost(ctx context.Context, postID, userID int64) error
	UnbookmarkPost(ctx context.Context, postID, userID int64) error
	LikedPostIDs(ctx context.Context, userID int64) (map[int64]bool, error)
	BookmarkedPostIDs(ctx context.Context, userID int64) (map[int64]bool, error)

	ListGroups(ctx context.Context) ([]domain.Group, error)
	GetGroup(ctx context.Context, id int64) (*domain.Group, error)
	JoinGroup(ctx context.Context, groupID, userID int64) error
	LeaveGroup(ctx context.Context, groupID, userID int64) error
	MemberGroupIDs(ctx context.Context, userID int64) (map[int64]bool, error)
}
