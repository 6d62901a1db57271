package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithID(id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "9000000000", want: 9000000000},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := idParam(requestWithID(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", maxBodySize) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var v struct{ Name string }
	err := decodeJSON(rec, req, &v)

	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestDateQuery(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantDate   string
		wantStart  string
		wantEnd    string
		wantRanged bool
		wantErr    bool
	}{
		{name: "date", target: "/?date=2026-03-01", wantDate: "2026-03-01"},
		{name: "date wins over range", target: "/?date=2026-03-01&start=2026-01-01&end=2026-01-02", wantDate: "2026-03-01"},
		{name: "range", target: "/?start=2026-03-01&end=2026-03-07", wantStart: "2026-03-01", wantEnd: "2026-03-07", wantRanged: true},
		{name: "nothing", target: "/", wantErr: true},
		{name: "half range", target: "/?start=2026-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, start, end, ranged, err := dateQuery(httptest.NewRequest(http.MethodGet, tt.target, nil))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingDateQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantRanged, ranged)
		})
	}
}

func TestCheckRangeSpan(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "single day", start: "2026-03-01", end: "2026-03-01"},
		{name: "leap year", start: "2028-01-01", end: "2028-12-31"},
		{name: "one day over", start: "2026-01-01", end: "2027-01-02", wantErr: true},
		{name: "centuries", start: "0001-01-01", end: "9999-12-31", wantErr: true},
		{name: "reversed", start: "2026-03-03", end: "2026-03-01"},
		{name: "malformed left to service", start: "2026-03-01", end: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRangeSpan(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRangeTooLong)
				return
			}
			assert.NoError(t, err)
		})
	}
}
