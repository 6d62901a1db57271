// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bookmark is a single launcher tile.
//
// Display order is carried by the position of the bookmark inside the slice
// that holds it; there is no rank field on the wire.
type Bookmark struct {
	// ID is assigned by the bookmark store on insert. Incoming IDs from a
	// backup document are discarded.
	ID int64 `json:"id,omitempty"`

	// Name is the natural key used for import de-duplication (case-insensitive).
	Name string `json:"name"`

	URL         string `json:"url"`
	CustomIcon  string `json:"customIcon,omitempty"`
	Group       string `json:"group,omitempty"`
	Description string `json:"description,omitempty"`
}
