package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SahilSawant11/mizu/internal/common"
	"github.com/SahilSawant11/mizu/internal/models"
)

const budgetKey = "budget"

type BudgetPeriod string

const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
)

func (p BudgetPeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Budget is a spending limit checked against expense totals.
type Budget struct {
	Amount  float64      `json:"amount"`
	Period  BudgetPeriod `json:"period"`
	Enabled bool         `json:"enabled"`
}

func (b *Budget) Validate() error {
	if b.Amount <= 0 {
		return fmt.Errorf("%w: budget amount must be positive", common.ErrValidation)
	}
	if !b.Period.Valid() {
		return fmt.Errorf("%w: unknown budget period %q", common.ErrValidation, b.Period)
	}
	return nil
}

// Window returns the calendar range the budget applies to at the given
// instant. Weeks start on Monday.
func (b *Budget) Window(now time.Time) models.DateRange {
	switch b.Period {
	case PeriodWeekly:
		offset := (int(now.Weekday()) + 6) % 7
		start := now.AddDate(0, 0, -offset)
		end := start.AddDate(0, 0, 6)
		return models.DateRange{
			Start: start.Format(models.DateLayout),
			End:   end.Format(models.DateLayout),
		}
	case PeriodMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, -1)
		return models.DateRange{
			Start: start.Format(models.DateLayout),
			End:   end.Format(models.DateLayout),
		}
	default:
		day := now.Format(models.DateLayout)
		return models.DateRange{Start: day, End: day}
	}
}

// Budget returns the stored budget, or nil when none is configured.
func (s *Service) Budget(ctx context.Context) (*Budget, error) {
	raw, err := s.repo.Get(ctx, budgetKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var b Budget
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("failed to decode budget: %w", err)
	}
	return &b, nil
}

func (s *Service) SetBudget(ctx context.Context, b *Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode budget: %w", err)
	}
	return s.repo.Set(ctx, budgetKey, raw)
}

func (s *Service) ClearBudget(ctx context.Context) error {
	return s.repo.Delete(ctx, budgetKey)
}
