// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	listBookmarks = `
		SELECT
			id,
			name,
			url,
			custom_icon,
			group_name,
			description
		FROM bookmarks
		ORDER BY position, id;`

	createBookmark = `
		INSERT INTO bookmarks (
			name,
			url,
			custom_icon,
			group_name,
			description,
			position
		) VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM bookmarks));`

	updateBookmark = `
		UPDATE bookmarks SET
			name        = ?,
			url         = ?,
			custom_icon = ?,
			group_name  = ?,
			description = ?
		WHERE id = ?;`

	reorderBookmark = `
		UPDATE bookmarks SET
			name        = ?,
			url         = ?,
			custom_icon = ?,
			group_name  = ?,
			description = ?,
			position    = ?
		WHERE id = ?;`

	deleteBookmark = `DELETE FROM bookmarks WHERE id = ?;`

	getSetting = `SELECT value FROM settings WHERE key = ?;`

	putSetting = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	listFoods = `
		SELECT
			id,
			image,
			name,
			category,
			quantity,
			unit,
			carbs,
			protein,
			fat,
			calories
		FROM foods
		ORDER BY id;`

	createFood = `
		INSERT INTO foods (
			image,
			name,
			category,
			quantity,
			unit,
			carbs,
			protein,
			fat,
			calories
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	updateFood = `
		UPDATE foods SET
			image    = ?,
			name     = ?,
			category = ?,
			quantity = ?,
			unit     = ?,
			carbs    = ?,
			protein  = ?,
			fat      = ?,
			calories = ?
		WHERE id = ?;`

	deleteFood = `DELETE FROM foods WHERE id = ?;`

	createRecord = `
		INSERT INTO records (
			food_id,
			food_name,
			food_image,
			quantity,
			unit,
			carbs,
			protein,
			fat,
			calories,
			meal_type,
			date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	deleteRecord = `DELETE FROM records WHERE id = ?;`
)
