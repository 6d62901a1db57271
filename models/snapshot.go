// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot format versions.
const (
	// SnapshotV1 is the legacy bookmarks-only backup.
	SnapshotV1 = 1
	// SnapshotV2 covers every domain.
	SnapshotV2 = 2
)

// SnapshotHeader is decoded first to select the concrete snapshot type.
type SnapshotHeader struct {
	Version int `json:"version"`
}

// SnapshotLegacy is the version 1 backup document.
type SnapshotLegacy struct {
	Version   int        `json:"version"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// Snapshot is the version 2 backup document.
type Snapshot struct {
	Version            int              `json:"version"`
	Bookmarks          []Bookmark       `json:"bookmarks"`
	BackgroundSettings *BackgroundPatch `json:"backgroundSettings,omitempty"`
	FoodLibrary        []FoodItem       `json:"foodLibrary"`
	IntakeRecords      []IntakeRecord   `json:"intakeRecords"`
	IntakeSettings     *IntakeSettings  `json:"intakeSettings,omitempty"`
}

// IntakeSettings groups the intake-tracker settings inside a snapshot.
type IntakeSettings struct {
	DailyLimits *DailyLimits `json:"dailyLimits,omitempty"`
}

// ImportFailure describes one record that could not be imported.
type ImportFailure struct {
	Domain string `json:"domain"`
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Err    string `json:"error"`
}

// ImportReport summarises an import run.
type ImportReport struct {
	RunID     string          `json:"runId"`
	Version   int             `json:"version"`
	Bookmarks int             `json:"bookmarks"`
	Foods     int             `json:"foods"`
	Records   int             `json:"records"`
	Failures  []ImportFailure `json:"failures,omitempty"`
}

// Created returns the number of newly created records across all domains.
// Settings overwrites are not counted.
func (r ImportReport) Created() int {
	return r.Bookmarks + r.Foods + r.Records
}
