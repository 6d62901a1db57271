package handler

import (
	"testing"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.ClientServer{HTTPAddress: "127.0.0.1:7878"}

	h, err := NewHandlers(&service.ClientServices{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.ClientServices{}, config.ClientServer{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
