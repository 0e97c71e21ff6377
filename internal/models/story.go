package models

import (
	"time"
)

type Story struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	AuthorID     uint      `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	Category     string    `json:"category" gorm:"index"`
	Image        string    `json:"image"`
	Images       []string  `json:"images" gorm:"type:json;serializer:json"`
	DisplayOrder int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Story) Normalize() {
	s.Image, s.Images = normalizeImages(s.Image, s.Images)
}
