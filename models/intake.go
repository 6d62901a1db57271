// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MealType is the meal an intake record belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// Valid reports whether m is one of the known meal types.
func (m MealType) Valid() bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// DateLayout is the ISO calendar date format used by intake records.
const DateLayout = "2006-01-02"

// IntakeRecord is one logged meal.
//
// FoodName, FoodImage and the macros are copied from the food library at the
// time of logging and scaled to the consumed quantity, so later edits to the
// library do not rewrite history. FoodID is a weak reference.
type IntakeRecord struct {
	ID        int64    `json:"id,omitempty"`
	FoodID    int64    `json:"foodId"`
	FoodName  string   `json:"foodName"`
	FoodImage string   `json:"foodImage"`
	Quantity  float64  `json:"quantity"`
	Unit      string   `json:"unit"`
	Carbs     float64  `json:"carbs"`
	Protein   float64  `json:"protein"`
	Fat       float64  `json:"fat"`
	Calories  float64  `json:"calories"`
	MealType  MealType `json:"mealType"`
	Date      string   `json:"date"`
}

// NutrientTotals is a sum of macros over a set of intake records.
type NutrientTotals struct {
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

// Add returns t with the macros of r added.
func (t NutrientTotals) Add(r IntakeRecord) NutrientTotals {
	t.Carbs += r.Carbs
	t.Protein += r.Protein
	t.Fat += r.Fat
	t.Calories += r.Calories
	return t
}

// DayTotals is the aggregate of one calendar day.
type DayTotals struct {
	Date string `json:"date"`
	NutrientTotals
}

// DailyLimits is the singleton daily macro target, in grams.
type DailyLimits struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

// DefaultDailyLimits returns the limits used before anything is stored.
func DefaultDailyLimits() DailyLimits {
	return DailyLimits{Carbs: 300, Protein: 60, Fat: 60}
}

// DailyLimitsPatch is the partial form of [DailyLimits] used when loading a
// stored row that may lack some fields.
type DailyLimitsPatch struct {
	Carbs   *float64 `json:"carbs,omitempty"`
	Protein *float64 `json:"protein,omitempty"`
	Fat     *float64 `json:"fat,omitempty"`
}
