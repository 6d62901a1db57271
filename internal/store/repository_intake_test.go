package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/models"
)

func TestIntakeRepository_ListWithFilters(t *testing.T) {
	ctx := testContext()
	repo := NewIntakeRepository(openTestDomain(t, t.TempDir(), IntakeDomain), logger.Nop())

	records := []models.IntakeRecord{
		{FoodID: 1, FoodName: "Oats", Quantity: 50, Unit: "g", Carbs: 30, Protein: 6, Fat: 3, Calories: 190, MealType: models.MealBreakfast, Date: "2024-01-01"},
		{FoodID: 2, FoodName: "Rice", Quantity: 150, Unit: "g", Carbs: 42, Protein: 4, Fat: 0.5, Calories: 195, MealType: models.MealLunch, Date: "2024-01-02"},
		{FoodID: 3, FoodName: "Eggs", Quantity: 2, Unit: "pc", Carbs: 1, Protein: 12, Fat: 10, Calories: 140, MealType: models.MealBreakfast, Date: "2024-01-02"},
	}
	for _, r := range records {
		id, err := repo.CreateRecord(ctx, r)
		require.NoError(t, err)
		require.Positive(t, id)
	}

	all, err := repo.ListRecords(ctx, RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Oats", all[0].FoodName)
	assert.Equal(t, models.MealBreakfast, all[0].MealType)

	byDate, err := repo.ListRecords(ctx, RecordFilter{Date: "2024-01-02"})
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, "Rice", byDate[0].FoodName)
	assert.Equal(t, "Eggs", byDate[1].FoodName)

	byMeal, err := repo.ListRecords(ctx, RecordFilter{Date: "2024-01-02", MealType: models.MealBreakfast})
	require.NoError(t, err)
	require.Len(t, byMeal, 1)
	assert.Equal(t, "Eggs", byMeal[0].FoodName)

	none, err := repo.ListRecords(ctx, RecordFilter{Date: "2023-12-31"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestIntakeRepository_IdenticalRecordsAreKept(t *testing.T) {
	ctx := testContext()
	repo := NewIntakeRepository(openTestDomain(t, t.TempDir(), IntakeDomain), logger.Nop())

	record := models.IntakeRecord{FoodName: "Apple", Quantity: 1, Unit: "pc", Calories: 95, MealType: models.MealLunch, Date: "2024-03-01"}
	first, err := repo.CreateRecord(ctx, record)
	require.NoError(t, err)
	second, err := repo.CreateRecord(ctx, record)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	all, err := repo.ListRecords(ctx, RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestIntakeRepository_Delete(t *testing.T) {
	ctx := testContext()
	repo := NewIntakeRepository(openTestDomain(t, t.TempDir(), IntakeDomain), logger.Nop())

	id, err := repo.CreateRecord(ctx, models.IntakeRecord{FoodName: "Tea", MealType: models.MealDinner, Date: "2024-03-01"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRecord(ctx, id))
	assert.ErrorIs(t, repo.DeleteRecord(ctx, id), ErrRecordNotFound)
}

func TestIntakeRepository_DBErrors(t *testing.T) {
	dbErr := errors.New("database disk image is malformed")

	t.Run("list", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM records WHERE date = ?")).
			WithArgs("2024-01-01").
			WillReturnError(dbErr)

		_, err := NewIntakeRepository(newDBFromSQL(db, IntakeDomain), logger.Nop()).ListRecords(testContext(), RecordFilter{Date: "2024-01-01"})
		require.ErrorIs(t, err, ErrExecutingQuery)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).WillReturnError(dbErr)

		_, err := NewIntakeRepository(newDBFromSQL(db, IntakeDomain), logger.Nop()).CreateRecord(testContext(), models.IntakeRecord{FoodName: "x"})
		require.ErrorIs(t, err, ErrTransactionFailed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
