package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/validators"
	"github.com/Theworld7/VisiFind/models"
)

type clientIntakeService struct {
	repo         store.IntakeRepository
	settingsRepo store.SettingsRepository
	validator    validators.Validator

	mu      sync.RWMutex
	records []models.IntakeRecord
	limits  models.DailyLimits

	logger *logger.Logger
}

// NewClientIntakeService creates an IntakeService with no loaded records and
// the default daily limits.
func NewClientIntakeService(repo store.IntakeRepository, settingsRepo store.SettingsRepository, validator validators.Validator, logger *logger.Logger) IntakeService {
	return &clientIntakeService{
		repo:         repo,
		settingsRepo: settingsRepo,
		validator:    validator,
		limits:       models.DefaultDailyLimits(),
		logger:       logger,
	}
}

func (s *clientIntakeService) LoadAll(ctx context.Context) error {
	records, err := s.repo.ListRecords(ctx, store.RecordFilter{})
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	s.setRecords(records)
	return nil
}

func (s *clientIntakeService) LoadByDate(ctx context.Context, date string) error {
	if !validators.IsISODate(date) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDate)
	}

	records, err := s.repo.ListRecords(ctx, store.RecordFilter{Date: date})
	if err != nil {
		return fmt.Errorf("load records of %s: %w", date, err)
	}
	s.setRecords(records)
	return nil
}

// LoadByDateRange scans every record and keeps the ones inside the range.
// ISO dates compare lexicographically in chronological order.
func (s *clientIntakeService) LoadByDateRange(ctx context.Context, start, end string) error {
	if err := validators.ValidateDateRange(start, end); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	all, err := s.repo.ListRecords(ctx, store.RecordFilter{})
	if err != nil {
		return fmt.Errorf("load records from %s to %s: %w", start, end, err)
	}

	s.setRecords(slices.DeleteFunc(all, func(r models.IntakeRecord) bool {
		return !inRange(r.Date, start, end)
	}))
	return nil
}

func (s *clientIntakeService) setRecords(records []models.IntakeRecord) {
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

func (s *clientIntakeService) Records() []models.IntakeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *clientIntakeService) Add(ctx context.Context, record models.IntakeRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, record)
}

func (s *clientIntakeService) add(ctx context.Context, record models.IntakeRecord) (int64, error) {
	record.ID = 0
	if err := s.validator.Validate(ctx, record); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id, err := s.repo.CreateRecord(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("create record: %w", err)
	}

	record.ID = id
	s.records = append(s.records, record)
	return id, nil
}

func (s *clientIntakeService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	s.records = slices.DeleteFunc(s.records, func(r models.IntakeRecord) bool { return r.ID == id })
	return nil
}

func (s *clientIntakeService) RecordsByMealType(date string, meal models.MealType) []models.IntakeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.IntakeRecord, 0)
	for _, r := range s.records {
		if r.Date == date && r.MealType == meal {
			out = append(out, r)
		}
	}
	return out
}

func (s *clientIntakeService) DailyTotals(date string) models.NutrientTotals {
	return s.RangeTotals(date, date)
}

func (s *clientIntakeService) RangeTotals(start, end string) models.NutrientTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var totals models.NutrientTotals
	for _, r := range s.records {
		if inRange(r.Date, start, end) {
			totals = totals.Add(r)
		}
	}
	return totals
}

// DailyTotalsForRange walks the calendar from start to end in UTC so that
// daylight saving changes never skip or repeat a day.
func (s *clientIntakeService) DailyTotalsForRange(start, end string) ([]models.DayTotals, error) {
	if err := validators.ValidateDateRange(start, end); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	from, _ := time.Parse(models.DateLayout, start)
	to, _ := time.Parse(models.DateLayout, end)

	s.mu.RLock()
	byDate := make(map[string]models.NutrientTotals)
	for _, r := range s.records {
		if inRange(r.Date, start, end) {
			byDate[r.Date] = byDate[r.Date].Add(r)
		}
	}
	s.mu.RUnlock()

	days := make([]models.DayTotals, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(models.DateLayout)
		days = append(days, models.DayTotals{Date: date, NutrientTotals: byDate[date]})
	}
	return days, nil
}

func (s *clientIntakeService) Export() []models.IntakeRecord {
	return s.Records()
}

func (s *clientIntakeService) Import(ctx context.Context, records []models.IntakeRecord) (int, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		created int
		errs    []error
	)
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if _, err := s.add(ctx, r); err != nil {
			errs = append(errs, &RecordImportError{Domain: DomainRecords, Index: i, Name: r.FoodName, Err: err})
			continue
		}
		created++
	}

	log.Info().
		Str("func", "clientIntakeService.Import").
		Int("received", len(records)).
		Int("created", created).
		Int("failed", len(errs)).
		Msg("intake records imported")

	return created, errors.Join(errs...)
}

// LoadDailyLimits reads the stored limits. Absent fields keep their current
// value.
func (s *clientIntakeService) LoadDailyLimits(ctx context.Context) (models.DailyLimits, error) {
	raw, err := s.settingsRepo.GetSetting(ctx, store.SettingDailyLimits)
	if errors.Is(err, store.ErrSettingNotFound) {
		return s.DailyLimits(), nil
	}
	if err != nil {
		return models.DailyLimits{}, fmt.Errorf("load daily limits: %w", err)
	}

	var patch models.DailyLimitsPatch
	if err = json.Unmarshal(raw, &patch); err != nil {
		return models.DailyLimits{}, fmt.Errorf("decode daily limits: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Carbs != nil {
		s.limits.Carbs = *patch.Carbs
	}
	if patch.Protein != nil {
		s.limits.Protein = *patch.Protein
	}
	if patch.Fat != nil {
		s.limits.Fat = *patch.Fat
	}
	return s.limits, nil
}

func (s *clientIntakeService) SaveDailyLimits(ctx context.Context, limits models.DailyLimits) error {
	if err := s.validator.Validate(ctx, limits); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.PutSetting(ctx, store.SettingDailyLimits, limits); err != nil {
		return fmt.Errorf("save daily limits: %w", err)
	}

	s.limits = limits
	return nil
}

func (s *clientIntakeService) DailyLimits() models.DailyLimits {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limits
}

func inRange(date, start, end string) bool {
	return date >= start && date <= end
}
