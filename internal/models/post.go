package models

import (
	"time"
)

// Post は投稿モデル
// AuthorIDはnullableで、作成者が削除された投稿は作成者なしとして扱う
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  *uint     `json:"author_id"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
