// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// VisiFind local API handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies and log entries. Client errors get the cause appended after a
// colon; server errors carry the message alone.
package app

// Request validation.
const (
	// MsgInvalidQuery is returned when the date query parameters of an intake
	// request are missing or malformed.
	MsgInvalidQuery = "invalid query"

	MsgInvalidBookmark     = "invalid bookmark"
	MsgInvalidBookmarkID   = "invalid bookmark id"
	MsgInvalidBookmarkList = "invalid bookmark list"

	MsgInvalidBackgroundSettings = "invalid background settings"
	MsgInvalidSearchEngine       = "invalid search engine"

	MsgInvalidFoodItem = "invalid food item"
	MsgInvalidFoodID   = "invalid food id"

	MsgInvalidIntakeRecord   = "invalid intake record"
	MsgInvalidIntakeRecordID = "invalid intake record id"
	MsgInvalidDailyLimits    = "invalid daily limits"
)

// Operation failures.
const (
	MsgErrorCreatingBookmark    = "error creating bookmark"
	MsgErrorUpdatingBookmark    = "error updating bookmark"
	MsgErrorDeletingBookmark    = "error deleting bookmark"
	MsgErrorReorderingBookmarks = "error reordering bookmarks"

	MsgErrorUpdatingBackgroundSettings = "error updating background settings"

	// MsgErrorFetchingBingWallpaper is returned when the wallpaper endpoint is
	// unreachable or answers with an unusable document.
	MsgErrorFetchingBingWallpaper = "error fetching bing wallpaper"

	MsgErrorSavingSearchEngine = "error saving search engine"
	MsgErrorBuildingSearchURL  = "error building search url"

	MsgErrorCreatingFoodItem = "error creating food item"
	MsgErrorUpdatingFoodItem = "error updating food item"
	MsgErrorDeletingFoodItem = "error deleting food item"

	MsgErrorLoadingIntakeRecords     = "error loading intake records"
	MsgErrorCreatingIntakeRecord     = "error creating intake record"
	MsgErrorDeletingIntakeRecord     = "error deleting intake record"
	MsgErrorAggregatingIntakeRecords = "error aggregating intake records"
	MsgErrorSavingDailyLimits        = "error saving daily limits"

	// MsgErrorExportingBackup is returned when a domain could not be reloaded
	// while assembling a snapshot.
	MsgErrorExportingBackup = "error exporting backup"
	MsgErrorEncodingBackup  = "error encoding backup"
	MsgErrorReadingBackup   = "error reading backup"
	MsgErrorImportingBackup = "error importing backup"
)
