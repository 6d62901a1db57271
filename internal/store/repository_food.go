package store

import (
	"context"
	"fmt"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/models"
)

type foodRepository struct {
	*DB
	logger *logger.Logger
}

// NewFoodRepository constructs a [FoodRepository] backed by the food library
// database.
func NewFoodRepository(db *DB, logger *logger.Logger) FoodRepository {
	return &foodRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *foodRepository) ListFoods(ctx context.Context) ([]models.FoodItem, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, listFoods)
	if err != nil {
		log.Err(err).
			Str("func", "foodRepository.ListFoods").
			Msg("failed to execute query for listing foods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	foods := make([]models.FoodItem, 0, 32)
	for rows.Next() {
		var food models.FoodItem
		scanErr := rows.Scan(
			&food.ID,
			&food.Image,
			&food.Name,
			&food.Category,
			&food.Quantity,
			&food.Unit,
			&food.Carbs,
			&food.Protein,
			&food.Fat,
			&food.Calories,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "foodRepository.ListFoods").
				Msg("failed to scan food row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		foods = append(foods, food)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "foodRepository.ListFoods").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return foods, nil
}

func (f *foodRepository) CreateFood(ctx context.Context, food models.FoodItem) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := f.DB.ExecContext(ctx, createFood,
		food.Image,
		food.Name,
		food.Category,
		food.Quantity,
		food.Unit,
		food.Carbs,
		food.Protein,
		food.Fat,
		food.Calories,
	)
	if err != nil {
		log.Err(err).
			Str("func", "foodRepository.CreateFood").
			Str("name", food.Name).
			Msg("failed to insert food")
		return 0, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "foodRepository.CreateFood").
			Str("name", food.Name).
			Msg("failed to read inserted food id")
		return 0, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return id, nil
}

func (f *foodRepository) UpdateFood(ctx context.Context, food models.FoodItem) error {
	log := logger.FromContext(ctx)

	result, err := f.DB.ExecContext(ctx, updateFood,
		food.Image,
		food.Name,
		food.Category,
		food.Quantity,
		food.Unit,
		food.Carbs,
		food.Protein,
		food.Fat,
		food.Calories,
		food.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "foodRepository.UpdateFood").
			Int64("id", food.ID).
			Msg("failed to update food")
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return expectAffected(ctx, result, "foodRepository.UpdateFood", food.ID, ErrFoodNotFound)
}

func (f *foodRepository) DeleteFood(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := f.DB.ExecContext(ctx, deleteFood, id)
	if err != nil {
		log.Err(err).
			Str("func", "foodRepository.DeleteFood").
			Int64("id", id).
			Msg("failed to delete food")
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return expectAffected(ctx, result, "foodRepository.DeleteFood", id, ErrFoodNotFound)
}
