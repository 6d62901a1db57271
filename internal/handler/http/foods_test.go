package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/validators"
	"github.com/Theworld7/VisiFind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListFoods(t *testing.T) {
	h, m := newMockedHandler(t)
	foods := []models.FoodItem{{ID: 1, Name: "Rice", Quantity: 100, Unit: "g", Carbs: 28, Protein: 2.7, Fat: 0.3, Calories: 130}}
	m.foods.EXPECT().Foods().Return(foods)

	rec := serve(t, h, http.MethodGet, "/api/foods", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, foods, decodeResponse[[]models.FoodItem](t, rec))
}

func TestCreateFood(t *testing.T) {
	h, m := newMockedHandler(t)
	food := models.FoodItem{Name: "Egg", Category: "protein", Quantity: 1, Unit: "pc", Protein: 6, Fat: 5, Calories: 72}
	m.foods.EXPECT().Add(gomock.Any(), food).Return(int64(11), nil)

	rec := serve(t, h, http.MethodPost, "/api/foods", jsonBody(t, food))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(11), decodeResponse[createdResponse](t, rec).ID)
}

func TestCreateFood_NegativeMacros(t *testing.T) {
	h, m := newMockedHandler(t)
	m.foods.EXPECT().Add(gomock.Any(), gomock.Any()).
		Return(int64(0), fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNegativeNutrient))

	rec := serve(t, h, http.MethodPost, "/api/foods", strings.NewReader(`{"name":"Egg","fat":-1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateFood(t *testing.T) {
	h, m := newMockedHandler(t)
	m.foods.EXPECT().Update(gomock.Any(), int64(4), models.FoodItem{Name: "Oats"}).Return(nil)

	rec := serve(t, h, http.MethodPut, "/api/foods/4", strings.NewReader(`{"name":"Oats"}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteFood(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: store.ErrFoodNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", err: store.ErrTransactionFailed, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.foods.EXPECT().Delete(gomock.Any(), int64(4)).Return(tt.err)

			rec := serve(t, h, http.MethodDelete, "/api/foods/4", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
