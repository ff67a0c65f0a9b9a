package community

import (
	"context"

	"travelhub/internal/domain"
	pkgvalidator "travelhub/internal/pkg/validator"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service struct {
	repo CommunityRepository
	hub  *Hub
}

func NewService(repo CommunityRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) CreatePost(ctx context.Context, authorID int64, req CreatePostRequest) (*domain.Post, error) {
	p := &domain.Post{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Images:   req.Images,
		Location: req.Location,
		Tags:     req.Tags,
	}
	if err := pkgvalidator.Check(p); err != nil {
		return nil, err
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(map[string]interface{}{
			"type": "post_created",
			"post": p,
		})
	}
	return p, nil
}

// ListPosts returns the feed decorated with the viewer's like/bookmark
// flags. A zero viewerID (anonymous) leaves all flags false.
func (s *Service) ListPosts(ctx context.Context, viewerID int64, q ListPostsQuery) ([]PostView, int64, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	posts, total, err := s.repo.ListPosts(ctx, q.Trending, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	liked := map[int64]bool{}
	bookmarked := map[int64]bool{}
	if viewerID != 0 {
		if liked, err = s.repo.LikedPostIDs(ctx, viewerID); err != nil {
			return nil, 0, err
		}
		if bookmarked, err = s.repo.BookmarkedPostIDs(ctx, viewerID); err != nil {
			return nil, 0, err
		}
	}

	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostView{
			Post:       p,
			Liked:      liked[p.ID],
			Bookmarked: bookmarked[p.ID],
		})
	}
	return out, total, nil
}

func (s *Service) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	p, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (s *Service) LikePost(ctx context.Context, postID, userID int64) error {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return ErrPostNotFound
	}
	if err := s.repo.LikePost(ctx, postID, userID); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast(map[string]interface{}{
			"type":    "post_liked",
			"post_id": postID,
			"user_id": userID,
		})
	}
	return nil
}

func (s *Service) UnlikePost(ctx context.Context, postID, userID int64) error {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return ErrPostNotFound
	}
	return s.repo.UnlikePost(ctx, postID, userID)
}

func (s *Service) BookmarkPost(ctx context.Context, postID, userID int64) error {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return ErrPostNotFound
	}
	return s.repo.BookmarkPost(ctx, postID, userID)
}

func (s *Service) UnbookmarkPost(ctx context.Context, postID, userID int64) error {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return ErrPostNotFound
	}
	return s.repo.UnbookmarkPost(ctx, postID, userID)
}

func (s *Service) ListGroups(ctx context.Context, viewerID int64) ([]GroupView, error) {
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	member := map[int64]bool{}
	if viewerID != 0 {
		if member, err = s.repo.MemberGroupIDs(ctx, viewerID); err != nil {
			return nil, err
		}
	}

	out := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupView{Group: g, Joined: member[g.ID]})
	}
	return out, nil
}

func (s *Service) JoinGroup(ctx context.Context, groupID, userID int64) error {
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return ErrGroupNotFound
	}
	return s.repo.JoinGroup(ctx, groupID, userID)
}

func (s *Service) LeaveGroup(ctx context.Context, groupID, userID int64) error {
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return ErrGroupNotFound
	}
	return s.repo.LeaveGroup(ctx, groupID, userID)
}
