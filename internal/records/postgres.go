package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SahilSawant11/mizu/internal/common"
	"github.com/SahilSawant11/mizu/internal/dbx"
	"github.com/SahilSawant11/mizu/internal/models"
)

// PostgresRepository implements Repository over the hosted table. Every
// statement is scoped by owner_id; row-level policies on the server side are
// assumed to enforce the same restriction independently.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pgRecordColumns = `id, title, kind, amount, category, payment_mode, notes, date, created_at, updated_at, owner_id, photo_url, photo_path, has_photo`

// requireOwner guards against unscoped queries reaching the hosted table.
func requireOwner(ownerID string) error {
	if ownerID == "" {
		return common.ErrUnauthorized
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, ownerID string, rec *models.Record) (int64, error) {
	if err := requireOwner(ownerID); err != nil {
		return 0, err
	}

	query := `INSERT INTO records (title, kind, amount, category, payment_mode, notes, date, created_at, updated_at, owner_id, photo_url, photo_path, has_photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		rec.Title, string(rec.Kind), rec.Amount, rec.Category, rec.PaymentMode, rec.Notes,
		rec.Date, rec.CreatedAt.UTC(), rec.UpdatedAt.UTC(), ownerID,
		rec.PhotoURL, rec.PhotoPath, rec.HasPhoto).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context, ownerID string) ([]models.Record, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	query := `SELECT ` + pgRecordColumns + ` FROM records WHERE owner_id = $1 ORDER BY date DESC, created_at DESC`
	return r.queryRecords(ctx, query, ownerID)
}

func (r *PostgresRepository) GetByDate(ctx context.Context, ownerID, day string) ([]models.Record, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	query := `SELECT ` + pgRecordColumns + ` FROM records WHERE owner_id = $1 AND date = $2 ORDER BY created_at DESC`
	return r.queryRecords(ctx, query, ownerID, day)
}

func (r *PostgresRepository) GetByDateRange(ctx context.Context, ownerID, start, end string) ([]models.Record, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	query := `SELECT ` + pgRecordColumns + ` FROM records WHERE owner_id = $1 AND date >= $2 AND date <= $3 ORDER BY date DESC, created_at DESC`
	return r.queryRecords(ctx, query, ownerID, start, end)
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID string, id int64) (*models.Record, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	query := `SELECT ` + pgRecordColumns + ` FROM records WHERE owner_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, ownerID, id)

	rec, err := scanPgRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select record: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) Update(ctx context.Context, ownerID string, id int64, patch *models.Patch, updatedAt time.Time) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	sets, args := pgPatchClauses(patch)
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)+1))
	args = append(args, updatedAt.UTC())

	query := `UPDATE records SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE owner_id = $%d AND id = $%d`, len(args)+1, len(args)+2)
	args = append(args, ownerID, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE owner_id = $1 AND id = $2`, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (r *PostgresRepository) TotalExpenses(ctx context.Context, ownerID string, dr models.DateRange) (float64, error) {
	if err := requireOwner(ownerID); err != nil {
		return 0, err
	}

	query := `SELECT COALESCE(SUM(amount), 0) FROM records WHERE owner_id = $1 AND kind = 'expense'`
	args := []any{ownerID}
	query, args = pgAppendRange(query, args, dr)

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) ActivityCount(ctx context.Context, ownerID string, dr models.DateRange) (int64, error) {
	if err := requireOwner(ownerID); err != nil {
		return 0, err
	}

	query := `SELECT COUNT(*) FROM records WHERE owner_id = $1 AND kind = 'activity'`
	args := []any{ownerID}
	query, args = pgAppendRange(query, args, dr)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) ExpensesByCategory(ctx context.Context, ownerID string, dr models.DateRange) ([]models.CategoryTotal, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	query := `SELECT COALESCE(category, '` + FallbackCategory + `') AS cat, COALESCE(SUM(amount), 0) AS total
		FROM records WHERE owner_id = $1 AND kind = 'expense'`
	args := []any{ownerID}
	query, args = pgAppendRange(query, args, dr)
	query += ` GROUP BY cat ORDER BY total DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses: %w", err)
	}
	defer rows.Close()

	var result []models.CategoryTotal
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		result = append(result, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		rec, err := scanPgRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func pgPatchClauses(patch *models.Patch) ([]string, []any) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Kind != nil {
		add("kind", string(*patch.Kind))
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.PaymentMode != nil {
		add("payment_mode", *patch.PaymentMode)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.PhotoURL != nil {
		add("photo_url", *patch.PhotoURL)
	}
	if patch.PhotoPath != nil {
		add("photo_path", *patch.PhotoPath)
	}
	if patch.HasPhoto != nil {
		add("has_photo", *patch.HasPhoto)
	}

	return sets, args
}

func pgAppendRange(query string, args []any, dr models.DateRange) (string, []any) {
	if dr.Start != "" {
		args = append(args, dr.Start)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if dr.End != "" {
		args = append(args, dr.End)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	return query, args
}

func scanPgRecord(scan func(dest ...any) error) (*models.Record, error) {
	var rec models.Record
	var kind string
	var amount sql.NullFloat64
	var category, paymentMode, notes, photoURL, photoPath sql.NullString

	err := scan(&rec.ID, &rec.Title, &kind, &amount, &category, &paymentMode, &notes,
		&rec.Date, &rec.CreatedAt, &rec.UpdatedAt, &rec.OwnerID, &photoURL, &photoPath, &rec.HasPhoto)
	if err != nil {
		return nil, err
	}

	rec.Kind = models.Kind(kind)
	rec.Amount = nullFloat(amount)
	rec.Category = nullString(category)
	rec.PaymentMode = nullString(paymentMode)
	rec.Notes = nullString(notes)
	rec.PhotoURL = nullString(photoURL)
	rec.PhotoPath = nullString(photoPath)

	return &rec, nil
}
