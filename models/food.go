// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FoodItem is a reusable food definition from the food library.
//
// Quantity and Unit describe the reference serving the macros apply to.
type FoodItem struct {
	ID       int64   `json:"id,omitempty"`
	Image    string  `json:"image"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}
