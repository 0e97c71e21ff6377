package models

import (
	"time"
)

type Destination struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Country      string    `json:"country"`
	Image        string    `json:"image"`
	Images       []string  `json:"images" gorm:"type:json;serializer:json"`
	IsPopular    bool      `json:"is_popular" gorm:"default:false"`
	DisplayOrder int       `json:"order" gorm:"column:display_order;default:0"`
	// Trips is a stored fallback counter; the live value is aggregated from
	// destination_trips and overwrites this in responses when available.
	Trips     int       `json:"trips" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Destination) Normalize() {
	d.Image, d.Images = normalizeImages(d.Image, d.Images)
}

// DestinationTrip references its Destination only through the denormalized
// slug and name; there is no enforced foreign key.
type DestinationTrip struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;not null"`
	DestinationSlug string    `json:"destination_slug" gorm:"index;not null"`
	DestinationName string    `json:"destination_name"`
	Title           string    `json:"title" gorm:"not null"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Duration        string    `json:"duration"`
	Image           string    `json:"image"`
	Images          []string  `json:"images" gorm:"type:json;serializer:json"`
	DisplayOrder    int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (t *DestinationTrip) Normalize() {
	t.Image, t.Images = normalizeImages(t.Image, t.Images)
}
