package mock

import (
	"time"

	"github.com/Linkeder/linkeder_backend/internal/models"
)

// モックユーザー
var Users = []models.User{
	{
		ID:           1,
		Email:        "john@example.com",
		PasswordHash: "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW", // "password"
		Name:         "John Doe",
		Description:  "Software engineer and coffee enthusiast",
		Image:        "https://via.placeholder.com/150",
		CreatedAt:    time.Now().Add(-30 * 24 * time.Hour),
		UpdatedAt:    time.Now().Add(-10 * 24 * time.Hour),
	},
	{
		ID:           2,
		Email:        "jane@example.com",
		PasswordHash: "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW", // "password"
		Name:         "Jane Smith",
		Description:  "Product manager",
		Image:        "https://via.placeholder.com/150",
		CreatedAt:    time.Now().Add(-25 * 24 * time.Hour),
		UpdatedAt:    time.Now().Add(-5 * 24 * time.Hour),
	},
}

// モック投稿
var Posts = []models.Post{
	{
		ID:        1,
		Title:     "First day at the new job",
		Content:   "Excited to share that I joined a new team this week.",
		AuthorID:  &Users[0].ID,
		CreatedAt: time.Now().Add(-20 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-20 * 24 * time.Hour),
	},
	{
		ID:        2,
		Title:     "Thoughts on remote work",
		Content:   "After a year of working remotely, here is what I learned.",
		AuthorID:  &Users[1].ID,
		CreatedAt: time.Now().Add(-10 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-10 * 24 * time.Hour),
	},
	{
		ID:        3,
		Title:     "Hiring",
		Content:   "Our team is looking for a backend engineer.",
		AuthorID:  nil, // 作成者が削除された投稿
		CreatedAt: time.Now().Add(-2 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-2 * 24 * time.Hour),
	},
}
