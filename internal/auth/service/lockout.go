package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/RedMake/comavi-auth/internal/auth/domain"
	"github.com/RedMake/comavi-auth/pkg/constant"
)

// LockoutService derives "is locked" from the append-only attempt ledger using
// a rolling window. MFA attempts share the same ledger under a reserved origin
// marker, so MFA brute-force throttling reuses the lockout machinery.
type LockoutService struct {
	store     domain.Store
	maxFailed int
	window    time.Duration
}

func NewLockoutService(store domain.Store, maxFailedAttempts, windowMinutes int) *LockoutService {
	return &LockoutService{
		store:     store,
		maxFailed: maxFailedAttempts,
		window:    time.Duration(windowMinutes) * time.Minute,
	}
}

// RecordAttempt appends to the ledger; a storage failure is logged and never
// fails the caller's flow.
func (s *LockoutService) RecordAttempt(ctx context.Context, accountID *string, email, origin string, success bool) {
	if err := s.store.RecordLoginAttempt(ctx, accountID, email, origin, success); err != nil {
		log.Printf("warn: failed to record login attempt for %s: %v", email, err)
	}
}

func (s *LockoutService) RecordMfaAttempt(ctx context.Context, accountID *string, email string, success bool) {
	s.RecordAttempt(ctx, accountID, email, constant.MfaAttemptOrigin, success)
}

// IsLocked counts failed primary-login attempts within the window. An unknown
// email runs the same query and counts zero rows, which keeps its timing in
// line with a known, unlocked account.
func (s *LockoutService) IsLocked(ctx context.Context, email string) (bool, error) {
	count, err := s.store.CountRecentFailedAttempts(ctx, email, time.Now().Add(-s.window))
	if err != nil {
		return false, fmt.Errorf("failed to check login attempts: %w", err)
	}
	return count >= s.maxFailed, nil
}

func (s *LockoutService) IsMfaThrottled(ctx context.Context, email string) (bool, error) {
	count, err := s.store.CountRecentFailedMfaAttempts(ctx, email, time.Now().Add(-s.window))
	if err != nil {
		return false, fmt.Errorf("failed to check mfa attempts: %w", err)
	}
	return count >= s.maxFailed, nil
}
