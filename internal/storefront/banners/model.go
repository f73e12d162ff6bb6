package banners

import "time"

// HeroBanner is the storefront's top-of-page promotional block. Several may
// exist; the storefront shows the most recently updated active one.
type HeroBanner struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	Description     string    `json:"description"`
	CTAText         string    `json:"cta_text"`
	CTALink         string    `json:"cta_link"`
	BackgroundImage string    `json:"background_image"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
