// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while parsing request input. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidID is returned when the {id} URL parameter is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id in url")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingDateQuery is returned when an intake endpoint receives
	// neither ?date nor both ?start and ?end.
	ErrMissingDateQuery = errors.New("either date or start and end query parameters are required")

	// ErrRangeTooLong is returned when a totals range spans more than
	// maxTotalsRangeDays calendar days.
	ErrRangeTooLong = errors.New("date range is too long")
)
