// Package records implements the record store: one repository contract with
// an embedded SQLite implementation and a hosted Postgres implementation,
// plus the service layer that wraps validation, identity, and photo
// bookkeeping around it.
package records

import (
	"context"
	"time"

	"github.com/SahilSawant11/mizu/internal/models"
)

// Repository describes CRUD and aggregate queries over records. Every method
// takes the owner the operation is scoped to; the SQLite implementation runs
// in single-user mode and ignores it, the Postgres implementation scopes
// every statement by it.
//
// Each call is one independent statement against the backing store. There is
// no retry, no optimistic-concurrency token, and no multi-statement
// transaction anywhere in this contract.
type Repository interface {
	// Create inserts a record and returns the store-assigned id.
	Create(ctx context.Context, ownerID string, rec *models.Record) (int64, error)

	// GetAll returns every record of the owner, ordered by date descending,
	// then created_at descending.
	GetAll(ctx context.Context, ownerID string) ([]models.Record, error)

	// GetByDate returns records whose date equals day, ordered by created_at
	// descending.
	GetByDate(ctx context.Context, ownerID, day string) ([]models.Record, error)

	// GetByDateRange returns records with start <= date <= end, ordered like
	// GetAll.
	GetByDateRange(ctx context.Context, ownerID, start, end string) ([]models.Record, error)

	// GetByID returns the record, or (nil, nil) when it does not exist or
	// belongs to someone else. Absence is not an error here.
	GetByID(ctx context.Context, ownerID string, id int64) (*models.Record, error)

	// Update applies the non-nil patch fields and sets updated_at to
	// updatedAt. Returns common.ErrNotFound when no row matched.
	Update(ctx context.Context, ownerID string, id int64, patch *models.Patch, updatedAt time.Time) error

	// Delete removes the row. Deleting an absent id is not an error.
	Delete(ctx context.Context, ownerID string, id int64) error

	// TotalExpenses sums amount over expense records, optionally bounded by
	// date. Zero when nothing matches.
	TotalExpenses(ctx context.Context, ownerID string, r models.DateRange) (float64, error)

	// ActivityCount counts activity records, optionally bounded by date.
	ActivityCount(ctx context.Context, ownerID string, r models.DateRange) (int64, error)

	// ExpensesByCategory groups expense sums by category, substituting
	// FallbackCategory for records without one. Ordered by total descending.
	ExpensesByCategory(ctx context.Context, ownerID string, r models.DateRange) ([]models.CategoryTotal, error)
}

// FallbackCategory labels expenses that were saved without a category.
const FallbackCategory = "Uncategorized"
