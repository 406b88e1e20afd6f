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

// timeLayout is a fixed-width RFC3339 variant. Fixed width keeps the stored
// strings lexicographically ordered, which the created_at sort relies on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteRepository implements Repository over the embedded database. It runs
// in single-user mode: the ownerID argument is accepted for contract
// symmetry and ignored.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteRecordColumns = `id, title, kind, amount, category, payment_mode, notes, date, created_at, updated_at, photo_url, photo_path, has_photo`

func (r *SQLiteRepository) Create(ctx context.Context, ownerID string, rec *models.Record) (int64, error) {
	query := `INSERT INTO records (title, kind, amount, category, payment_mode, notes, date, created_at, updated_at, photo_url, photo_path, has_photo)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		rec.Title, string(rec.Kind), rec.Amount, rec.Category, rec.PaymentMode, rec.Notes,
		rec.Date, rec.CreatedAt.UTC().Format(timeLayout), rec.UpdatedAt.UTC().Format(timeLayout),
		rec.PhotoURL, rec.PhotoPath, boolToInt(rec.HasPhoto))
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context, ownerID string) ([]models.Record, error) {
	query := `SELECT ` + sqliteRecordColumns + ` FROM records ORDER BY date DESC, created_at DESC`
	return r.queryRecords(ctx, query)
}

func (r *SQLiteRepository) GetByDate(ctx context.Context, ownerID, day string) ([]models.Record, error) {
	query := `SELECT ` + sqliteRecordColumns + ` FROM records WHERE date = ? ORDER BY created_at DESC`
	return r.queryRecords(ctx, query, day)
}

func (r *SQLiteRepository) GetByDateRange(ctx context.Context, ownerID, start, end string) ([]models.Record, error) {
	query := `SELECT ` + sqliteRecordColumns + ` FROM records WHERE date >= ? AND date <= ? ORDER BY date DESC, created_at DESC`
	return r.queryRecords(ctx, query, start, end)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, ownerID string, id int64) (*models.Record, error) {
	query := `SELECT ` + sqliteRecordColumns + ` FROM records WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanSQLiteRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, ownerID string, id int64, patch *models.Patch, updatedAt time.Time) error {
	sets, args := sqlitePatchClauses(patch)
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt.UTC().Format(timeLayout), id)

	query := `UPDATE records SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`

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

func (r *SQLiteRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) TotalExpenses(ctx context.Context, ownerID string, dr models.DateRange) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM records WHERE kind = 'expense'`
	where, args := sqliteRangeClauses(dr)

	var total float64
	if err := r.db.QueryRowContext(ctx, query+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

func (r *SQLiteRepository) ActivityCount(ctx context.Context, ownerID string, dr models.DateRange) (int64, error) {
	query := `SELECT COUNT(*) FROM records WHERE kind = 'activity'`
	where, args := sqliteRangeClauses(dr)

	var count int64
	if err := r.db.QueryRowContext(ctx, query+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) ExpensesByCategory(ctx context.Context, ownerID string, dr models.DateRange) ([]models.CategoryTotal, error) {
	query := `SELECT COALESCE(category, ?), COALESCE(SUM(amount), 0) AS total
		FROM records WHERE kind = 'expense'`
	args := []any{FallbackCategory}

	where, rangeArgs := sqliteRangeClauses(dr)
	query += where
	args = append(args, rangeArgs...)
	query += ` GROUP BY COALESCE(category, ?) ORDER BY total DESC`
	args = append(args, FallbackCategory)

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

func (r *SQLiteRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		rec, err := scanSQLiteRecord(rows.Scan)
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

// sqlitePatchClauses turns the non-nil patch fields into SET clauses,
// mirroring partial updates: untouched fields never appear in the statement.
func sqlitePatchClauses(patch *models.Patch) ([]string, []any) {
	var sets []string
	var args []any

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Kind != nil {
		sets = append(sets, "kind = ?")
		args = append(args, string(*patch.Kind))
	}
	if patch.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *patch.Amount)
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *patch.Category)
	}
	if patch.PaymentMode != nil {
		sets = append(sets, "payment_mode = ?")
		args = append(args, *patch.PaymentMode)
	}
	if patch.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *patch.Notes)
	}
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.PhotoURL != nil {
		sets = append(sets, "photo_url = ?")
		args = append(args, *patch.PhotoURL)
	}
	if patch.PhotoPath != nil {
		sets = append(sets, "photo_path = ?")
		args = append(args, *patch.PhotoPath)
	}
	if patch.HasPhoto != nil {
		sets = append(sets, "has_photo = ?")
		args = append(args, boolToInt(*patch.HasPhoto))
	}

	return sets, args
}

func sqliteRangeClauses(dr models.DateRange) (string, []any) {
	var where string
	var args []any
	if dr.Start != "" {
		where += " AND date >= ?"
		args = append(args, dr.Start)
	}
	if dr.End != "" {
		where += " AND date <= ?"
		args = append(args, dr.End)
	}
	return where, args
}

func scanSQLiteRecord(scan func(dest ...any) error) (*models.Record, error) {
	var rec models.Record
	var kind string
	var amount sql.NullFloat64
	var category, paymentMode, notes, photoURL, photoPath sql.NullString
	var createdAt, updatedAt string
	var hasPhoto int

	err := scan(&rec.ID, &rec.Title, &kind, &amount, &category, &paymentMode, &notes,
		&rec.Date, &createdAt, &updatedAt, &photoURL, &photoPath, &hasPhoto)
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
	rec.HasPhoto = hasPhoto != 0

	if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	if rec.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("bad updated_at %q: %w", updatedAt, err)
	}

	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
