// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackgroundInputMode selects where the page background comes from.
type BackgroundInputMode string

const (
	BackgroundModeColor  BackgroundInputMode = "color"
	BackgroundModeUpload BackgroundInputMode = "upload"
	BackgroundModeURL    BackgroundInputMode = "url"
	BackgroundModeBing   BackgroundInputMode = "bing"
)

// DefaultBackgroundColor is the swatch used whenever color mode is active.
const DefaultBackgroundColor = "#1a1a2e"

// Valid reports whether m is one of the known input modes.
func (m BackgroundInputMode) Valid() bool {
	switch m {
	case BackgroundModeColor, BackgroundModeUpload, BackgroundModeURL, BackgroundModeBing:
		return true
	}
	return false
}

// BackgroundSettings is the singleton background configuration.
type BackgroundSettings struct {
	BackgroundURL       string              `json:"backgroundUrl"`
	BackgroundInputMode BackgroundInputMode `json:"backgroundInputMode"`
	BackgroundBlur      float64             `json:"backgroundBlur"`
	BackgroundColor     string              `json:"backgroundColor"`
	BingWallpaperURL    string              `json:"bingWallpaperUrl"`
}

// DefaultBackgroundSettings returns the settings used before anything is stored.
func DefaultBackgroundSettings() BackgroundSettings {
	return BackgroundSettings{
		BackgroundInputMode: BackgroundModeColor,
		BackgroundColor:     DefaultBackgroundColor,
	}
}

// Patch returns a patch with every field set to the value in s.
func (s BackgroundSettings) Patch() BackgroundPatch {
	mode := string(s.BackgroundInputMode)
	return BackgroundPatch{
		BackgroundURL:       &s.BackgroundURL,
		BackgroundInputMode: &mode,
		BackgroundBlur:      &s.BackgroundBlur,
		BackgroundColor:     &s.BackgroundColor,
		BingWallpaperURL:    &s.BingWallpaperURL,
	}
}

// BackgroundPatch is the partial form of [BackgroundSettings]. A nil field
// means "not provided": it is used both for rows written before a field
// existed and for partial updates.
type BackgroundPatch struct {
	BackgroundURL       *string  `json:"backgroundUrl,omitempty"`
	BackgroundInputMode *string  `json:"backgroundInputMode,omitempty"`
	BackgroundBlur      *float64 `json:"backgroundBlur,omitempty"`
	BackgroundColor     *string  `json:"backgroundColor,omitempty"`
	BingWallpaperURL    *string  `json:"bingWallpaperUrl,omitempty"`
}

// BackgroundStyle is the render-ready form of the background settings.
type BackgroundStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	Blur            string `json:"--bg-blur"`
}
