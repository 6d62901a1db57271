package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var recordColumns = []string{
	"id",
	"food_id",
	"food_name",
	"food_image",
	"quantity",
	"unit",
	"carbs",
	"protein",
	"fat",
	"calories",
	"meal_type",
	"date",
}

// buildListRecordsQuery builds the SELECT for [IntakeRepository.ListRecords].
// Date and meal type equality use the secondary indexes of the records table.
func buildListRecordsQuery(filter RecordFilter) (string, []any, error) {
	builder := sq.Select(recordColumns...).From("records")

	if filter.Date != "" {
		builder = builder.Where(sq.Eq{"date": filter.Date})
	}
	if filter.MealType != "" {
		builder = builder.Where(sq.Eq{"meal_type": string(filter.MealType)})
	}

	query, args, err := builder.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
