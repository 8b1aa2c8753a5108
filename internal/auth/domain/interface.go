package domain

import (
	"context"
	"time"
)

type Store interface {
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id string) (*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
	MarkAccountVerified(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	SetMfaEnabled(ctx context.Context, id string, enabled bool) error

	RecordLoginAttempt(ctx context.Context, accountID *string, email, origin string, success bool) error
	CountRecentFailedAttempts(ctx context.Context, email string, since time.Time) (int, error)
	CountRecentFailedMfaAttempts(ctx context.Context, email string, since time.Time) (int, error)

	CreateMfaFactor(ctx context.Context, factor *MfaFactor) error
	GetPendingMfaFactor(ctx context.Context, accountID string) (*MfaFactor, error)
	GetActiveMfaFactor(ctx context.Context, accountID string) (*MfaFactor, error)
	ActivateMfaFactor(ctx context.Context, factorID string) (bool, error)
	DeactivateMfaFactors(ctx context.Context, accountID string) error

	CreateBackupCodes(ctx context.Context, codes []*BackupCode) error
	GetUnusedBackupCodes(ctx context.Context, accountID string) ([]*BackupCode, error)
	ConsumeBackupCode(ctx context.Context, codeID string) (bool, error)
	DeleteBackupCodes(ctx context.Context, accountID string) error

	CreatePasswordResetToken(ctx context.Context, token *PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, accountID, tokenHash string) (*PasswordResetToken, error)
	InvalidatePasswordResetTokens(ctx context.Context, accountID string) error
	ConsumePasswordResetToken(ctx context.Context, tokenID string) error
}
