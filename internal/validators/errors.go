package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrEmptyURL           = errors.New("url is required")
	ErrInvalidURL         = errors.New("invalid url")
	ErrNegativeNutrient   = errors.New("nutrient values cannot be negative")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidDate        = errors.New("date must be a zero-padded ISO date (YYYY-MM-DD)")
	ErrInvalidMealType    = errors.New("invalid meal type")
	ErrNegativeBlur       = errors.New("background blur cannot be negative")
	ErrInvalidInputMode   = errors.New("invalid background input mode")
	ErrNegativeDailyLimit = errors.New("daily limits cannot be negative")
)
