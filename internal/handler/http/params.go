package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Theworld7/VisiFind/models"
)

// maxBodySize bounds every JSON request body except backup uploads.
const maxBodySize = 1 << 20

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// maxTotalsRangeDays bounds the per-day rows built for one totals request.
const maxTotalsRangeDays = 366

// checkRangeSpan rejects ranges longer than maxTotalsRangeDays days. Malformed
// dates pass through and are rejected by the intake service.
func checkRangeSpan(start, end string) error {
	from, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return nil
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > maxTotalsRangeDays {
		return fmt.Errorf("%w: %d days, at most %d", ErrRangeTooLong, days, maxTotalsRangeDays)
	}
	return nil
}

// dateQuery reads either ?date or the ?start and ?end pair. ranged reports
// which form was given.
func dateQuery(r *http.Request) (date, start, end string, ranged bool, err error) {
	q := r.URL.Query()
	if date = q.Get("date"); date != "" {
		return date, "", "", false, nil
	}

	start, end = q.Get("start"), q.Get("end")
	if start == "" || end == "" {
		return "", "", "", false, ErrMissingDateQuery
	}
	return "", start, end, true, nil
}
