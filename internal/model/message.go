package model

import "time"

// TeamMessage is a bulletin-board post. Posts are append-only and served
// newest first; there is no edit or delete.
type TeamMessage struct {
	ID         string    `json:"id" gorm:"primaryKey;size:64"`
	AuthorID   string    `json:"author_id" gorm:"size:64;not null"`
	AuthorName string    `json:"author_name" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
