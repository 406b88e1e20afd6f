package settings

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/SahilSawant11/mizu/internal/common"
)

const pinHashKey = "pin_hash"

// SetPin stores a bcrypt hash of the pin, replacing any previous one.
func (s *Service) SetPin(ctx context.Context, pin string) error {
	if len(pin) < 4 {
		return fmt.Errorf("%w: pin must be at least 4 characters", common.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	return s.repo.Set(ctx, pinHashKey, hash)
}

func (s *Service) VerifyPin(ctx context.Context, pin string) error {
	hash, err := s.repo.Get(ctx, pinHashKey)
	if err != nil {
		return err
	}
	if hash == nil {
		return common.ErrPinNotSet
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(pin)); err != nil {
		return common.ErrPinMismatch
	}
	return nil
}

func (s *Service) PinSet(ctx context.Context) (bool, error) {
	hash, err := s.repo.Get(ctx, pinHashKey)
	if err != nil {
		return false, err
	}
	return hash != nil, nil
}

func (s *Service) ClearPin(ctx context.Context) error {
	return s.repo.Delete(ctx, pinHashKey)
}
