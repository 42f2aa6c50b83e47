package models

import "time"

// Banner is one carousel image on the storefront landing section.
type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
