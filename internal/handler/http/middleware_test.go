package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareHandler(l *logger.Logger) *Handler {
	return &Handler{traceIDs: utils.NewUUIDGenerator(), logger: l}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantValidUUID bool
	}{
		{name: "incoming trace id is reused", incoming: "my-custom-trace-id", wantSame: true},
		{name: "trace id is generated", wantValidUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBareHandler(&logger.Logger{Logger: zerolog.New(&buf)})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)

			if tt.wantSame {
				assert.Equal(t, tt.incoming, traceID)
			}
			if tt.wantValidUUID {
				parsed, err := uuid.Parse(traceID)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
		})
	}
}

func TestWithTraceID_UniqueUnderConcurrency(t *testing.T) {
	h := newBareHandler(logger.Nop())
	mw := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	const n = 50
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for range n {
		wg.Go(func() {
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			mu.Lock()
			seen[rec.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		})
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet, target: "/api/bookmarks", status: http.StatusOK, body: "[]",
			wantContains: []string{`"level":"info"`, `"method":"GET"`, `"uri":"/api/bookmarks"`, `"status":200`, `"size":2`},
		},
		{
			name:   "DELETE 204",
			method: http.MethodDelete, target: "/api/foods/3", status: http.StatusNoContent,
			wantContains: []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
		},
		{
			name:   "query kept in uri",
			method: http.MethodGet, target: "/api/intake/records?date=2026-03-01", status: http.StatusOK, body: "[]",
			wantContains: []string{`"uri":"/api/intake/records?date=2026-03-01"`},
		},
		{
			name:   "server error logged as error",
			method: http.MethodGet, target: "/api/backup", status: http.StatusInternalServerError, body: "error",
			wantContains: []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBareHandler(logger.Nop())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.target, nil)
			l := zerolog.New(&buf)
			req = req.WithContext(l.WithContext(req.Context()))

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := newBareHandler(logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	w.Write([]byte(" world"))

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
	assert.Same(t, rec, w.Unwrap())
}

func TestResponseWriter_WriteWithoutHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("x"))

	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.statusOrOK())
	assert.Equal(t, http.StatusOK, rec.Code)
}
