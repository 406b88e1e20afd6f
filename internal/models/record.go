// Package models defines the Record domain entity and the draft/patch DTOs
// used by the record store.
package models

import (
	"fmt"
	"time"

	"github.com/SahilSawant11/mizu/internal/common"
)

// Kind discriminates what a record describes and whether Amount is meaningful.
type Kind string

const (
	KindActivity Kind = "activity"
	KindExpense  Kind = "expense"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindActivity || k == KindExpense
}

// Expense categories offered by the app. Free-form values are still accepted
// by the store; this list only drives CLI prompts.
var Categories = []string{
	"Food & Drinks",
	"Transport",
	"Shopping",
	"Entertainment",
	"Health",
	"Bills & Utilities",
	"Education",
	"Other",
}

// Payment modes offered by the app.
var PaymentModes = []string{"Cash", "UPI", "Card", "Net Banking", "Other"}

// DateLayout is the calendar-day format used for Record.Date.
const DateLayout = "2006-01-02"

// Record is a single dated activity or expense entry.
//
// Amount, Category and PaymentMode are only meaningful when Kind is
// KindExpense. OwnerID is empty in single-user mode. PhotoURL/PhotoPath
// point at an externally stored image; HasPhoto is kept in sync with them.
type Record struct {
	ID          int64
	Title       string
	Kind        Kind
	Amount      *float64
	Category    *string
	PaymentMode *string
	Notes       *string
	Date        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OwnerID     string
	PhotoURL    *string
	PhotoPath   *string
	HasPhoto    bool
}

// Draft carries caller input for creating a record. Date defaults to the
// current local calendar day when empty.
type Draft struct {
	Title       string
	Kind        Kind
	Amount      *float64
	Category    *string
	PaymentMode *string
	Notes       *string
	Date        string
	PhotoURL    *string
	PhotoPath   *string
	HasPhoto    bool
}

// Patch carries a partial update: nil fields are left untouched.
type Patch struct {
	Title       *string
	Kind        *Kind
	Amount      *float64
	Category    *string
	PaymentMode *string
	Notes       *string
	Date        *string
	PhotoURL    *string
	PhotoPath   *string
	HasPhoto    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Kind == nil && p.Amount == nil &&
		p.Category == nil && p.PaymentMode == nil && p.Notes == nil &&
		p.Date == nil && p.PhotoURL == nil && p.PhotoPath == nil && p.HasPhoto == nil
}

// DateRange bounds aggregate queries. Empty Start or End means unbounded
// on that side.
type DateRange struct {
	Start string
	End   string
}

// CategoryTotal is one row of the expenses-by-category aggregate.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Validate checks a draft before it reaches storage.
func (d *Draft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", common.ErrValidation, d.Kind)
	}
	if d.Amount != nil && *d.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", common.ErrValidation)
	}
	if d.Kind == KindActivity && d.Amount != nil {
		return fmt.Errorf("%w: amount is only valid for expenses", common.ErrValidation)
	}
	if d.Date != "" {
		if err := ValidateDate(d.Date); err != nil {
			return err
		}
	}
	if d.HasPhoto && d.PhotoURL == nil {
		return fmt.Errorf("%w: has_photo set without photo url", common.ErrValidation)
	}
	return nil
}

// Validate checks a patch before it reaches storage.
func (p *Patch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if p.Kind != nil && !p.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", common.ErrValidation, *p.Kind)
	}
	if p.Amount != nil && *p.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", common.ErrValidation)
	}
	if p.Date != nil {
		if err := ValidateDate(*p.Date); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD calendar-day format.
func ValidateDate(day string) error {
	if _, err := time.Parse(DateLayout, day); err != nil {
		return fmt.Errorf("%w: bad date %q, want YYYY-MM-DD", common.ErrValidation, day)
	}
	return nil
}
