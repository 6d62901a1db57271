package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/validators"
	"github.com/Theworld7/VisiFind/models"
)

type clientFoodLibraryService struct {
	repo      store.FoodRepository
	validator validators.Validator

	mu    sync.RWMutex
	foods []models.FoodItem

	logger *logger.Logger
}

func NewClientFoodLibraryService(repo store.FoodRepository, validator validators.Validator, logger *logger.Logger) FoodLibraryService {
	return &clientFoodLibraryService{repo: repo, validator: validator, logger: logger}
}

func (s *clientFoodLibraryService) Load(ctx context.Context) error {
	foods, err := s.repo.ListFoods(ctx)
	if err != nil {
		return fmt.Errorf("load foods: %w", err)
	}

	s.mu.Lock()
	s.foods = foods
	s.mu.Unlock()
	return nil
}

func (s *clientFoodLibraryService) Foods() []models.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.foods)
}

func (s *clientFoodLibraryService) Add(ctx context.Context, food models.FoodItem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, food)
}

func (s *clientFoodLibraryService) add(ctx context.Context, food models.FoodItem) (int64, error) {
	food.ID = 0
	if err := s.validator.Validate(ctx, food); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id, err := s.repo.CreateFood(ctx, food)
	if err != nil {
		return 0, fmt.Errorf("create food: %w", err)
	}

	food.ID = id
	s.foods = append(s.foods, food)
	return id, nil
}

func (s *clientFoodLibraryService) Update(ctx context.Context, id int64, food models.FoodItem) error {
	food.ID = id
	if err := s.validator.Validate(ctx, food); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpdateFood(ctx, food); err != nil {
		return fmt.Errorf("update food: %w", err)
	}

	if i := slices.IndexFunc(s.foods, func(f models.FoodItem) bool { return f.ID == id }); i >= 0 {
		s.foods[i] = food
	}
	return nil
}

func (s *clientFoodLibraryService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteFood(ctx, id); err != nil {
		return fmt.Errorf("delete food: %w", err)
	}

	s.foods = slices.DeleteFunc(s.foods, func(f models.FoodItem) bool { return f.ID == id })
	return nil
}

func (s *clientFoodLibraryService) Export() []models.FoodItem {
	return s.Foods()
}

func (s *clientFoodLibraryService) Import(ctx context.Context, foods []models.FoodItem) (int, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{}, len(s.foods)+len(foods))
	for _, f := range s.foods {
		existing[nameKey(f.Name)] = struct{}{}
	}

	var (
		created int
		errs    []error
	)
	for i, f := range foods {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		key := nameKey(f.Name)
		if _, ok := existing[key]; ok {
			continue
		}

		if _, err := s.add(ctx, f); err != nil {
			errs = append(errs, &RecordImportError{Domain: DomainFoods, Index: i, Name: f.Name, Err: err})
			continue
		}
		existing[key] = struct{}{}
		created++
	}

	log.Info().
		Str("func", "clientFoodLibraryService.Import").
		Int("received", len(foods)).
		Int("created", created).
		Int("failed", len(errs)).
		Msg("foods imported")

	return created, errors.Join(errs...)
}
