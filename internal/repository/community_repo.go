package repository

import (
	"context"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

/* ---------- POSTS ---------- */

func (r *CommunityRepository) CreatePost(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CommunityRepository) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPosts orders by creation time, or by likes when trending is set.
func (r *CommunityRepository) ListPosts(ctx context.Context, trending bool, limit, offset int) ([]domain.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Post{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if trending {
		order = "likes DESC, created_at DESC"
	}

	var out []domain.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order(order).
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (r *CommunityRepository) LikePost(ctx context.Context, postID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			FirstOrCreate(&domain.PostLike{PostID: postID, UserID: userID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // already liked
		}
		return tx.Model(&domain.Post{}).Where("id = ?", postID).
			Update("likes", gorm.Expr("likes + 1")).Error
	})
}

func (r *CommunityRepository) UnlikePost(ctx context.Context, postID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&domain.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&domain.Post{}).Where("id = ? AND likes > 0", postID).
			Update("likes", gorm.Expr("likes - 1")).Error
	})
}

func (r *CommunityRepository) BookmarkPost(ctx context.Context, postID, userID int64) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		FirstOrCreate(&domain.PostBookmark{PostID: postID, UserID: userID}).Error
}

func (r *CommunityRepository) UnbookmarkPost(ctx context.Context, postID, userID int64) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&domain.PostBookmark{}).Error
}

func (r *CommunityRepository) LikedPostIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.PostLike{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toIDSet(ids), nil
}

func (r *CommunityRepository) BookmarkedPostIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.PostBookmark{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toIDSet(ids), nil
}

/* ---------- GROUPS ---------- */

func (r *CommunityRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	var out []domain.Group
	err := r.db.WithContext(ctx).Order("member_count DESC").Find(&out).Error
	return out, err
}

func (r *CommunityRepository) GetGroup(ctx context.Context, id int64) (*domain.Group, error) {
	var g domain.Group
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *CommunityRepository) JoinGroup(ctx context.Context, groupID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("group_id = ? AND user_id = ?", groupID, userID).
			FirstOrCreate(&domain.GroupMember{GroupID: groupID, UserID: userID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&domain.Group{}).Where("id = ?", groupID).
			Update("member_count", gorm.Expr("member_count + 1")).Error
	})
}

func (r *CommunityRepository) LeaveGroup(ctx context.Context, groupID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("group_id = ? AND user_id = ?", groupID, userID).
			Delete(&domain.GroupMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&domain.Group{}).Where("id = ? AND member_count > 0", groupID).
			Update("member_count", gorm.Expr("member_count - 1")).Error
	})
}

func (r *CommunityRepository) MemberGroupIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.GroupMember{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toIDSet(ids), nil
}

func toIDSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
