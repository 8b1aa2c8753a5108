package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/RedMake/comavi-auth/internal/auth/domain"
	"github.com/google/uuid"
)

const backupCodeLength = 10 // normalized form, two 5-char hex groups

// BackupCodeService issues and consumes one-time MFA bypass codes. Codes are
// stored normalized (uppercase hex, no separator) so a 5-character prefix of
// an unused code still resolves it.
type BackupCodeService struct {
	store domain.Store
	count int
	locks *accountLocks
}

func NewBackupCodeService(store domain.Store, count int) *BackupCodeService {
	return &BackupCodeService{
		store: store,
		count: count,
		locks: newAccountLocks(),
	}
}

// Generate replaces any prior batch with count fresh codes and returns them in
// display form (AAAAA-BBBBB). The batch is distinct by construction retry.
func (s *BackupCodeService) Generate(ctx context.Context, accountID string) ([]string, error) {
	seen := make(map[string]struct{}, s.count)
	codes := make([]*domain.BackupCode, 0, s.count)
	display := make([]string, 0, s.count)
	now := time.Now()

	for len(codes) < s.count {
		code, err := newBackupCode()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		codes = append(codes, &domain.BackupCode{
			ID:        uuid.NewString(),
			AccountID: accountID,
			Code:      code,
			CreatedAt: now,
			Used:      false,
		})
		display = append(display, code[:5]+"-"+code[5:])
	}

	if err := s.store.DeleteBackupCodes(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to invalidate previous backup codes: %w", err)
	}
	if err := s.store.CreateBackupCodes(ctx, codes); err != nil {
		return nil, fmt.Errorf("failed to store backup codes: %w", err)
	}

	return display, nil
}

// Consume accepts a full 10-character code or an unambiguous 5-character
// prefix, with or without separator, case-insensitively. A code is accepted at
// most once: the match and the mark-used are serialized per account and the
// store update is conditional on used = FALSE.
func (s *BackupCodeService) Consume(ctx context.Context, accountID, submitted string) (bool, error) {
	normalized := normalizeBackupCode(submitted)
	if len(normalized) != backupCodeLength && len(normalized) != backupCodeLength/2 {
		return false, nil
	}

	lock := s.locks.lock(accountID)
	defer lock.Unlock()

	unused, err := s.store.GetUnusedBackupCodes(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to load backup codes: %w", err)
	}

	for _, c := range unused {
		if c.Code != normalized && !strings.HasPrefix(c.Code, normalized) {
			continue
		}
		consumed, err := s.store.ConsumeBackupCode(ctx, c.ID)
		if err != nil {
			return false, fmt.Errorf("failed to consume backup code: %w", err)
		}
		return consumed, nil
	}

	return false, nil
}

func (s *BackupCodeService) DeleteAll(ctx context.Context, accountID string) error {
	return s.store.DeleteBackupCodes(ctx, accountID)
}

func newBackupCode() (string, error) {
	raw := make([]byte, backupCodeLength/2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate backup code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

func normalizeBackupCode(code string) string {
	code = strings.ReplaceAll(code, "-", "")
	code = strings.ReplaceAll(code, " ", "")
	return strings.ToUpper(strings.TrimSpace(code))
}
