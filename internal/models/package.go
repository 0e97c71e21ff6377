package models

import (
	"time"
)

type PackageType string

const (
	PackageDomestic      PackageType = "domestic"
	PackageInternational PackageType = "international"
)

func (t PackageType) Valid() bool {
	return t == PackageDomestic || t == PackageInternational
}

// ItineraryDay is one entry of a package's ordered day-by-day plan.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Meals       []string `json:"meals"`
}

type Package struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string         `json:"title" gorm:"not null"`
	Location     string         `json:"location"`
	Country      string         `json:"country"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	Duration     string         `json:"duration"`
	Type         PackageType    `json:"type" gorm:"type:varchar(16);not null;default:'domestic'"`
	Image        string         `json:"image"`
	Images       []string       `json:"images" gorm:"type:json;serializer:json"`
	Itinerary    []ItineraryDay `json:"itinerary" gorm:"type:json;serializer:json"`
	DisplayOrder int            `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Normalize applies the public-shape defaulting rules in place.
func (p *Package) Normalize() {
	p.Image, p.Images = normalizeImages(p.Image, p.Images)
	if p.Itinerary == nil {
		p.Itinerary = []ItineraryDay{}
	}
	for i := range p.Itinerary {
		if p.Itinerary[i].Activities == nil {
			p.Itinerary[i].Activities = []string{}
		}
		if p.Itinerary[i].Meals == nil {
			p.Itinerary[i].Meals = []string{}
		}
	}
}

type PackageRequest struct {
	Slug        string         `json:"slug" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Location    string         `json:"location"`
	Country     string         `json:"country"`
	Description string         `json:"description"`
	Price       float64        `json:"price" validate:"gte=0"`
	Duration    string         `json:"duration"`
	Type        PackageType    `json:"type" validate:"required,oneof=domestic international"`
	Image       string         `json:"image"`
	Images      []string       `json:"images"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Order       int            `json:"order"`
}
