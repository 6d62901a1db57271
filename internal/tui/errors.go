// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/Theworld7/VisiFind/internal/adapter"
	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/internal/service"
)

var (
	ErrUserQuit      = errors.New("user quit the launcher")
	errNoServices    = errors.New("tui: services are not set")
	errNothingToCopy = errors.New("nothing to copy")
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return "Type something to search for"
	case errors.Is(err, service.ErrWallpaperUnavailable), errors.Is(err, adapter.ErrNoWallpaper):
		return "Bing wallpaper is unavailable right now"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable"
	}

	return err.Error()
}
