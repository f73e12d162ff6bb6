package banners

// CreateHeroBannerRequest is the createHeroBanner mutation input. is_active
// defaults to true when absent, unlike the other optional flags.
type CreateHeroBannerRequest struct {
	Title           string `json:"title" validate:"required"`
	Subtitle        string `json:"subtitle" validate:"required"`
	Description     string `json:"description" validate:"required"`
	CTAText         string `json:"cta_text" validate:"required"`
	CTALink         string `json:"cta_link" validate:"required"`
	BackgroundImage string `json:"background_image" validate:"required,url"`
	IsActive        *bool  `json:"is_active,omitempty"`
}
