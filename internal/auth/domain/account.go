package domain

import "time"

type Account struct {
	ID                 string
	Username           string
	Email              string
	PasswordHash       string
	Role               string
	Verified           bool
	VerificationToken  string
	VerificationExpiry time.Time
	MfaEnabled         bool
	PasswordChangedAt  time.Time
	CreatedAt          time.Time
}

// LoginAttempt rows are append-only; the lockout window is computed from them,
// they are never updated in place.
type LoginAttempt struct {
	ID          string
	AccountID   *string
	Email       string
	Origin      string
	AttemptTime time.Time
	Successful  bool
}

type MfaFactor struct {
	ID        string
	AccountID string
	Secret    string
	CreatedAt time.Time
	Used      bool
	Active    bool
}

// BackupCode stores the normalized code value (uppercase hex, no separator) so
// that partial 5-character prefixes remain matchable.
type BackupCode struct {
	ID        string
	AccountID string
	Code      string
	CreatedAt time.Time
	Used      bool
}

type PasswordResetToken struct {
	ID        string
	AccountID string
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}
