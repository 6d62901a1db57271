package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/utils"
)

const (
	defaultMirrorBaseURL  = "https://bing.biturl.top"
	defaultArchiveBaseURL = "https://www.bing.com"

	// bingImageHost prefixes the urlbase returned by HPImageArchive.
	bingImageHost     = "https://www.bing.com"
	archiveImageSize  = "_1920x1080.jpg"
	mirrorResolution  = "1920"
	archiveImagesPath = "/HPImageArchive.aspx"
)

type mirrorResponse struct {
	URL string `json:"url"`
}

type archiveResponse struct {
	Images []struct {
		URLBase string `json:"urlbase"`
	} `json:"images"`
}

type httpWallpaperAdapter struct {
	client *utils.HTTPClient
	mode   string
	market string

	logger *logger.Logger
}

// NewHTTPWallpaperAdapter constructs the resty implementation of
// [WallpaperAdapter] for the variant selected by cfg.WallpaperMode.
// cfg.WallpaperURL, when set, replaces the variant's default base URL.
func NewHTTPWallpaperAdapter(cfg config.ClientAdapter, logger *logger.Logger) (WallpaperAdapter, error) {
	var baseURL string
	switch cfg.WallpaperMode {
	case config.WallpaperModeMirror:
		baseURL = defaultMirrorBaseURL
	case config.WallpaperModeArchive:
		baseURL = defaultArchiveBaseURL
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWallpaperAPI, cfg.WallpaperMode)
	}

	if cfg.WallpaperURL != "" {
		normalized, err := normalizeBaseURL(cfg.WallpaperURL)
		if err != nil {
			return nil, fmt.Errorf("invalid wallpaper url: %w", err)
		}
		baseURL = normalized
	}

	market := cfg.WallpaperMarket
	if market == "" {
		market = config.DefaultWallpaperMarket
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpWallpaperAdapter{client: client, mode: cfg.WallpaperMode, market: market, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchBingWallpaper implements [WallpaperAdapter].
func (h *httpWallpaperAdapter) FetchBingWallpaper(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	var (
		wallpaperURL string
		err          error
	)
	if h.mode == config.WallpaperModeArchive {
		wallpaperURL, err = h.fetchArchive(ctx)
	} else {
		wallpaperURL, err = h.fetchMirror(ctx)
	}
	if err != nil {
		log.Err(err).Str("func", "httpWallpaperAdapter.FetchBingWallpaper").Str("mode", h.mode).Msg("failed to fetch bing wallpaper")
		return "", err
	}

	log.Debug().Str("func", "httpWallpaperAdapter.FetchBingWallpaper").Str("url", wallpaperURL).Msg("bing wallpaper fetched")
	return wallpaperURL, nil
}

func (h *httpWallpaperAdapter) fetchMirror(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"resolution": mirrorResolution,
			"format":     "json",
			"index":      "0",
			"mkt":        h.market,
		}).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("mirror wallpaper request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body mirrorResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if strings.TrimSpace(body.URL) == "" {
		return "", ErrNoWallpaper
	}

	return body.URL, nil
}

func (h *httpWallpaperAdapter) fetchArchive(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "js",
			"idx":    "0",
			"n":      "1",
			"mkt":    h.market,
		}).
		Get(archiveImagesPath)
	if err != nil {
		return "", fmt.Errorf("archive wallpaper request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body archiveResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if len(body.Images) == 0 || body.Images[0].URLBase == "" {
		return "", ErrNoWallpaper
	}

	return bingImageHost + body.Images[0].URLBase + archiveImageSize, nil
}
