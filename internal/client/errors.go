package client

import "errors"

var (
	ErrAppNotConfigured = errors.New("client app: services and config are required")
	ErrNoLauncher       = errors.New("client app: launcher is required unless running headless")
)
