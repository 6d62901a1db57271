package adapter

import "errors"

var (
	ErrNoWallpaper         = errors.New("no bing wallpaper found")
	ErrUnexpectedStatus    = errors.New("unexpected wallpaper response status")
	ErrDecodingResponse    = errors.New("error decoding wallpaper response")
	ErrUnknownWallpaperAPI = errors.New("unknown wallpaper mode")
)
