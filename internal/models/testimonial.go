package models

import (
	"time"
)

// Testimonial has no slug; it only appears on the homepage strip.
type Testimonial struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Rating      int       `json:"rating" gorm:"default:5"`
	Text        string    `json:"text"`
	PackageName string    `json:"package_name"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize clamps out-of-range ratings back to the default.
func (t *Testimonial) Normalize() {
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}
	if t.Avatar == "" {
		t.Avatar = PlaceholderImage
	}
}
