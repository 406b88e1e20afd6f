package records

import (
	"context"
	"fmt"
	"time"

	"github.com/SahilSawant11/mizu/internal/auth"
	"github.com/SahilSawant11/mizu/internal/blob"
	"github.com/SahilSawant11/mizu/internal/common"
	"github.com/SahilSawant11/mizu/internal/logging"
	"github.com/SahilSawant11/mizu/internal/models"
)

// Service wraps a Repository with owner resolution, draft validation,
// timestamp management, and photo bookkeeping. It does not retry and does
// not suppress storage errors; they are logged and rethrown. The one
// exception is the photo blob delete inside Delete, which is best-effort:
//
//	photo delete ok,   row delete ok   -> record gone, blob gone
//	photo delete fail, row delete ok   -> record gone, blob orphaned (logged)
//	photo delete any,  row delete fail -> error returned, record kept
//
// A record is therefore never unremovable because of a blob-storage outage;
// orphaned blobs are the accepted cost.
type Service struct {
	repo    Repository
	photos  blob.Store
	session auth.Provider
	logger  logging.Logger

	// now is a clock seam so tests can verify updated_at strictly grows.
	now func() time.Time
}

// NewService builds a Service. photos may be nil when photo support is
// disabled; session defaults to single-user mode when nil.
func NewService(repo Repository, photos blob.Store, session auth.Provider, logger logging.Logger) *Service {
	if session == nil {
		session = auth.SingleUser{}
	}
	return &Service{
		repo:    repo,
		photos:  photos,
		session: session,
		logger:  logger.With("module", "records"),
		now:     time.Now,
	}
}

// owner resolves the current principal for every operation. The unscoped
// (single-user) provider returns "" without error.
func (s *Service) owner(ctx context.Context) (string, error) {
	userID, err := s.session.CurrentUserID(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: no current user", common.ErrUnauthorized)
	}
	return userID, nil
}

// Create validates the draft, applies defaults (date = today), stamps both
// timestamps with the same instant, and returns the store-assigned id.
func (s *Service) Create(ctx context.Context, draft *models.Draft) (int64, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return 0, err
	}

	if err := draft.Validate(); err != nil {
		return 0, err
	}

	now := s.now()
	date := draft.Date
	if date == "" {
		date = now.Format(models.DateLayout)
	}

	rec := &models.Record{
		Title:       draft.Title,
		Kind:        draft.Kind,
		Amount:      draft.Amount,
		Category:    draft.Category,
		PaymentMode: draft.PaymentMode,
		Notes:       draft.Notes,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
		PhotoURL:    draft.PhotoURL,
		PhotoPath:   draft.PhotoPath,
		HasPhoto:    draft.HasPhoto,
	}

	id, err := s.repo.Create(ctx, ownerID, rec)
	if err != nil {
		s.logger.Error(ctx, "create failed", "error", err)
		return 0, err
	}

	s.logger.Debug(ctx, "record created", "id", id, "kind", rec.Kind)
	return id, nil
}

// GetAll returns every record of the current owner, newest day first.
func (s *Service) GetAll(ctx context.Context) ([]models.Record, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, ownerID)
}

// GetByDate returns the records of one calendar day.
func (s *Service) GetByDate(ctx context.Context, day string) ([]models.Record, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateDate(day); err != nil {
		return nil, err
	}
	return s.repo.GetByDate(ctx, ownerID, day)
}

// GetByDateRange returns records with start <= date <= end, inclusive.
func (s *Service) GetByDateRange(ctx context.Context, start, end string) ([]models.Record, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateDate(start); err != nil {
		return nil, err
	}
	if err := models.ValidateDate(end); err != nil {
		return nil, err
	}
	return s.repo.GetByDateRange(ctx, ownerID, start, end)
}

// GetByID returns the record or (nil, nil) when it does not exist. Absence
// is deliberately not an error for lookups.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, ownerID, id)
}

// Update applies the supplied fields only and always refreshes updated_at.
// Missing rows surface as common.ErrNotFound.
func (s *Service) Update(ctx context.Context, id int64, patch *models.Patch) error {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, ownerID, id, patch, s.now()); err != nil {
		s.logger.Error(ctx, "update failed", "id", id, "error", err)
		return err
	}
	return nil
}

// Delete removes a record, best-effort deleting its photo blob first.
// Deleting an id that is already gone is benign and returns nil.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return err
	}

	rec, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		s.logger.Debug(ctx, "delete of absent record", "id", id)
		return nil
	}

	s.deletePhotoBlob(ctx, rec)

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		s.logger.Error(ctx, "delete failed", "id", id, "error", err)
		return err
	}
	return nil
}

// deletePhotoBlob removes the record's blob when one is attached. Failures
// are logged and swallowed so the row delete can proceed.
func (s *Service) deletePhotoBlob(ctx context.Context, rec *models.Record) {
	if !rec.HasPhoto || rec.PhotoPath == nil || s.photos == nil {
		return
	}
	if err := s.photos.Delete(ctx, *rec.PhotoPath); err != nil {
		s.logger.Warn(ctx, "photo delete failed, blob orphaned",
			"id", rec.ID, "path", *rec.PhotoPath, "error", err)
	}
}

// AttachPhoto uploads data and links it to the record, replacing any
// previous photo (the old blob is best-effort deleted).
func (s *Service) AttachPhoto(ctx context.Context, id int64, contentType string, data []byte) (*blob.Photo, error) {
	if s.photos == nil {
		return nil, fmt.Errorf("%w: photo storage not configured", common.ErrValidation)
	}

	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, common.ErrNotFound
	}

	photo, err := s.photos.Upload(ctx, ownerID, contentType, data)
	if err != nil {
		s.logger.Error(ctx, "photo upload failed", "id", id, "error", err)
		return nil, err
	}

	hasPhoto := true
	patch := &models.Patch{PhotoURL: &photo.URL, PhotoPath: &photo.Path, HasPhoto: &hasPhoto}
	if err := s.repo.Update(ctx, ownerID, id, patch, s.now()); err != nil {
		s.logger.Error(ctx, "photo link failed", "id", id, "error", err)
		return nil, err
	}

	s.deletePhotoBlob(ctx, rec)

	return photo, nil
}

// RemovePhoto unlinks and best-effort deletes the record's photo.
func (s *Service) RemovePhoto(ctx context.Context, id int64) error {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return err
	}

	rec, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return common.ErrNotFound
	}
	if !rec.HasPhoto {
		return nil
	}

	s.deletePhotoBlob(ctx, rec)

	empty := ""
	hasPhoto := false
	patch := &models.Patch{PhotoURL: &empty, PhotoPath: &empty, HasPhoto: &hasPhoto}
	return s.repo.Update(ctx, ownerID, id, patch, s.now())
}

// PhotoLink returns a short-lived download link for the record's photo.
func (s *Service) PhotoLink(ctx context.Context, id int64) (string, error) {
	if s.photos == nil {
		return "", fmt.Errorf("%w: photo storage not configured", common.ErrValidation)
	}

	ownerID, err := s.owner(ctx)
	if err != nil {
		return "", err
	}

	rec, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	if rec == nil || !rec.HasPhoto || rec.PhotoPath == nil {
		return "", common.ErrNotFound
	}

	return s.photos.PresignGet(ctx, *rec.PhotoPath)
}

// TotalExpenses sums expense amounts, optionally bounded by date.
func (s *Service) TotalExpenses(ctx context.Context, dr models.DateRange) (float64, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return 0, err
	}
	if err := validateRange(dr); err != nil {
		return 0, err
	}
	return s.repo.TotalExpenses(ctx, ownerID, dr)
}

// ActivityCount counts activity records, optionally bounded by date.
func (s *Service) ActivityCount(ctx context.Context, dr models.DateRange) (int64, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return 0, err
	}
	if err := validateRange(dr); err != nil {
		return 0, err
	}
	return s.repo.ActivityCount(ctx, ownerID, dr)
}

// ExpensesByCategory groups expense sums by category.
func (s *Service) ExpensesByCategory(ctx context.Context, dr models.DateRange) ([]models.CategoryTotal, error) {
	ownerID, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRange(dr); err != nil {
		return nil, err
	}
	return s.repo.ExpensesByCategory(ctx, ownerID, dr)
}

func validateRange(dr models.DateRange) error {
	if dr.Start != "" {
		if err := models.ValidateDate(dr.Start); err != nil {
			return err
		}
	}
	if dr.End != "" {
		if err := models.ValidateDate(dr.End); err != nil {
			return err
		}
	}
	return nil
}
