package models

import (
	"time"
)

type TripActivity string

const (
	ActivityTrekking    TripActivity = "trekking"
	ActivityRafting     TripActivity = "rafting"
	ActivityCamping     TripActivity = "camping"
	ActivitySafari      TripActivity = "safari"
	ActivitySkiing      TripActivity = "skiing"
	ActivityDiving      TripActivity = "diving"
	ActivityCycling     TripActivity = "cycling"
	ActivityParagliding TripActivity = "paragliding"
)

var tripActivities = map[TripActivity]bool{
	ActivityTrekking:    true,
	ActivityRafting:     true,
	ActivityCamping:     true,
	ActivitySafari:      true,
	ActivitySkiing:      true,
	ActivityDiving:      true,
	ActivityCycling:     true,
	ActivityParagliding: true,
}

func (a TripActivity) Valid() bool {
	return tripActivities[a]
}

type Trip struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Slug         string       `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string       `json:"title" gorm:"not null"`
	Activity     TripActivity `json:"activity" gorm:"type:varchar(32)"`
	Location     string       `json:"location"`
	Country      string       `json:"country"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	Type         PackageType  `json:"type" gorm:"type:varchar(16);not null;default:'domestic'"`
	Image        string       `json:"image"`
	Images       []string     `json:"images" gorm:"type:json;serializer:json"`
	DisplayOrder int          `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (t *Trip) Normalize() {
	t.Image, t.Images = normalizeImages(t.Image, t.Images)
}
