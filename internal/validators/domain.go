package validators

import (
	"context"
	"net/url"
	"time"

	"github.com/Theworld7/VisiFind/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a bookmark or food item, or the
	// food name copied into an intake record.
	FieldName = "name"

	// FieldURL targets the bookmark target URL.
	FieldURL = "url"

	// FieldNutrients targets carbs, protein, fat and calories.
	FieldNutrients = "nutrients"

	// FieldQuantity targets the serving quantity.
	FieldQuantity = "quantity"

	// FieldDate targets the ISO date of an intake record.
	FieldDate = "date"

	// FieldMealType targets the meal an intake record belongs to.
	FieldMealType = "meal_type"

	// FieldBlur targets the background blur radius.
	FieldBlur = "blur"

	// FieldInputMode targets the background input mode.
	FieldInputMode = "input_mode"
)

// DomainValidator implements [Validator] for the stored entities: bookmarks,
// food items, intake records, background settings (full or patch) and daily
// limits. Both values and pointers are accepted.
type DomainValidator struct{}

// NewDomainValidator constructs a new DomainValidator and returns it as the
// Validator interface.
func NewDomainValidator() Validator {
	return &DomainValidator{}
}

// Validate dispatches to the type-specific check. With no fields every rule
// of the type applies.
func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Bookmark:
		return v.validateBookmark(value, fields...)
	case *models.Bookmark:
		return v.validateBookmark(*value, fields...)

	case models.FoodItem:
		return v.validateFood(value, fields...)
	case *models.FoodItem:
		return v.validateFood(*value, fields...)

	case models.IntakeRecord:
		return v.validateRecord(value, fields...)
	case *models.IntakeRecord:
		return v.validateRecord(*value, fields...)

	case models.BackgroundSettings:
		return v.validateBackgroundPatch(value.Patch(), fields...)
	case models.BackgroundPatch:
		return v.validateBackgroundPatch(value, fields...)
	case *models.BackgroundPatch:
		return v.validateBackgroundPatch(*value, fields...)

	case models.DailyLimits:
		return validateDailyLimits(value)
	case *models.DailyLimits:
		return validateDailyLimits(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *DomainValidator) validateBookmark(bookmark models.Bookmark, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if bookmark.Name == "" {
				return ErrEmptyName
			}
		case FieldURL:
			if bookmark.URL == "" {
				return ErrEmptyURL
			}
			if _, err := url.Parse(bookmark.URL); err != nil {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateFood(food models.FoodItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldQuantity, FieldNutrients}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if food.Name == "" {
				return ErrEmptyName
			}
		case FieldQuantity:
			if food.Quantity < 0 {
				return ErrNegativeQuantity
			}
		case FieldNutrients:
			if anyNegative(food.Carbs, food.Protein, food.Fat, food.Calories) {
				return ErrNegativeNutrient
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateRecord(record models.IntakeRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldQuantity, FieldNutrients, FieldMealType, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if record.FoodName == "" {
				return ErrEmptyName
			}
		case FieldQuantity:
			if record.Quantity < 0 {
				return ErrNegativeQuantity
			}
		case FieldNutrients:
			if anyNegative(record.Carbs, record.Protein, record.Fat, record.Calories) {
				return ErrNegativeNutrient
			}
		case FieldMealType:
			if !record.MealType.Valid() {
				return ErrInvalidMealType
			}
		case FieldDate:
			if !IsISODate(record.Date) {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateBackgroundPatch(patch models.BackgroundPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlur, FieldInputMode}
	}

	for _, f := range fields {
		switch f {
		case FieldBlur:
			if patch.BackgroundBlur != nil && *patch.BackgroundBlur < 0 {
				return ErrNegativeBlur
			}
		case FieldInputMode:
			if patch.BackgroundInputMode != nil && !models.BackgroundInputMode(*patch.BackgroundInputMode).Valid() {
				return ErrInvalidInputMode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDailyLimits(limits models.DailyLimits) error {
	if anyNegative(limits.Carbs, limits.Protein, limits.Fat) {
		return ErrNegativeDailyLimit
	}
	return nil
}

// IsISODate reports whether s is a valid, zero-padded "YYYY-MM-DD" date.
// Only such dates sort lexicographically in chronological order.
func IsISODate(s string) bool {
	if len(s) != len(models.DateLayout) {
		return false
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

// ValidateDateRange checks that start and end are ISO dates. A start after
// end is a valid, empty range.
func ValidateDateRange(start, end string) error {
	if !IsISODate(start) || !IsISODate(end) {
		return ErrInvalidDate
	}
	return nil
}

func anyNegative(values ...float64) bool {
	for _, v := range values {
		if v < 0 {
			return true
		}
	}
	return false
}
