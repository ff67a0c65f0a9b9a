package domain

import "time"

type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title" validate:"required,min=5"`
	Content   string    `json:"content" validate:"required,min=10"`
	Images    []string  `json:"images,omitempty" gorm:"serializer:json"`
	Location  string    `json:"location,omitempty"`
	Tags      []string  `json:"tags" gorm:"serializer:json"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	MemberCount int       `json:"member_count"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostLike and PostBookmark are membership rows keyed by (post, user).
type PostLike struct {
	PostID    int64     `json:"post_id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

type PostBookmark struct {
	PostID    int64     `json:"post_id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupMember struct {
	GroupID   int64     `json:"group_id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
