// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP integration used by VisiFind:
// fetching the Bing picture of the day for the page background.
//
// Two endpoint variants are supported and selected through
// [config.ClientAdapter.WallpaperMode]: a community mirror that answers with a
// single JSON object carrying the image URL, and the official HPImageArchive
// endpoint whose first image's urlbase is expanded to a 1920x1080 JPEG URL.
//
// Non-2xx responses are mapped to [ErrUnexpectedStatus] by mapHTTPError so that
// callers can use [errors.Is].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/wallpaper_adapter_mock.go -package=mock

// WallpaperAdapter fetches the current Bing wallpaper.
type WallpaperAdapter interface {
	// FetchBingWallpaper returns an absolute URL of today's Bing wallpaper.
	// It returns [ErrNoWallpaper] when the endpoint answers without an image.
	FetchBingWallpaper(ctx context.Context) (string, error)
}
