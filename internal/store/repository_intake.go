package store

import (
	"context"
	"fmt"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/models"
)

// intakeRepository is the SQLite-backed implementation of
// [IntakeRepository]. Records are append-only: there is no update.
type intakeRepository struct {
	*DB
	logger *logger.Logger
}

// NewIntakeRepository constructs an [IntakeRepository] backed by the intake
// database.
func NewIntakeRepository(db *DB, logger *logger.Logger) IntakeRepository {
	return &intakeRepository{
		DB:     db,
		logger: logger,
	}
}

// ListRecords returns the records matching filter in insertion order.
func (i *intakeRepository) ListRecords(ctx context.Context, filter RecordFilter) ([]models.IntakeRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "intakeRepository.ListRecords").
			Str("date", filter.Date).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := i.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "intakeRepository.ListRecords").
			Str("date", filter.Date).
			Str("meal_type", string(filter.MealType)).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.IntakeRecord, 0, 64)
	for rows.Next() {
		var record models.IntakeRecord
		scanErr := rows.Scan(
			&record.ID,
			&record.FoodID,
			&record.FoodName,
			&record.FoodImage,
			&record.Quantity,
			&record.Unit,
			&record.Carbs,
			&record.Protein,
			&record.Fat,
			&record.Calories,
			&record.MealType,
			&record.Date,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "intakeRepository.ListRecords").
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "intakeRepository.ListRecords").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// CreateRecord appends record and returns the assigned id. record.ID is
// ignored.
func (i *intakeRepository) CreateRecord(ctx context.Context, record models.IntakeRecord) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := i.DB.ExecContext(ctx, createRecord,
		record.FoodID,
		record.FoodName,
		record.FoodImage,
		record.Quantity,
		record.Unit,
		record.Carbs,
		record.Protein,
		record.Fat,
		record.Calories,
		string(record.MealType),
		record.Date,
	)
	if err != nil {
		log.Err(err).
			Str("func", "intakeRepository.CreateRecord").
			Str("food_name", record.FoodName).
			Str("date", record.Date).
			Msg("failed to insert record")
		return 0, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "intakeRepository.CreateRecord").
			Msg("failed to read inserted record id")
		return 0, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return id, nil
}

func (i *intakeRepository) DeleteRecord(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := i.DB.ExecContext(ctx, deleteRecord, id)
	if err != nil {
		log.Err(err).
			Str("func", "intakeRepository.DeleteRecord").
			Int64("id", id).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return expectAffected(ctx, result, "intakeRepository.DeleteRecord", id, ErrRecordNotFound)
}
