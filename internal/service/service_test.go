package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/validators"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// openTestStorages opens real domain databases inside dir.
func openTestStorages(t *testing.T, dir string) *store.ClientStorages {
	t.Helper()
	storages, err := store.NewClientStorages(testContext(), config.ClientStorage{DataDir: dir}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

// newTestServices wires services over fresh databases in a temp dir.
func newTestServices(t *testing.T) *ClientServices {
	t.Helper()
	return NewClientServices(openTestStorages(t, t.TempDir()), nil, logger.Nop())
}

func testValidator() validators.Validator {
	return validators.NewDomainValidator()
}

func ptr[T any](v T) *T {
	return &v
}
