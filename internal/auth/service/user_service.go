package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/RedMake/comavi-auth/internal/auth/domain"
	"github.com/RedMake/comavi-auth/internal/auth/dto"
	autherror "github.com/RedMake/comavi-auth/internal/errors"
	"github.com/RedMake/comavi-auth/pkg/constant"
	"github.com/google/uuid"
)

// UserService orchestrates the credential lifecycle: it is the only component
// that touches the persistent store directly; the hasher, token service, OTP
// engine, backup codes, lockout policy, and blacklist hang off it.
type UserService struct {
	store        domain.Store
	tokenService TokenGenerator
	hasher       *PasswordHasher
	otp          *OtpService
	backupCodes  *BackupCodeService
	lockout      *LockoutService
	blacklist    *TokenBlacklist

	resetTokenValidity time.Duration
	locks              *accountLocks
}

func NewUserService(
	store domain.Store,
	tokenService TokenGenerator,
	hasher *PasswordHasher,
	otp *OtpService,
	backupCodes *BackupCodeService,
	lockout *LockoutService,
	blacklist *TokenBlacklist,
	resetTokenValidHours int,
) *UserService {
	return &UserService{
		store:              store,
		tokenService:       tokenService,
		hasher:             hasher,
		otp:                otp,
		backupCodes:        backupCodes,
		lockout:            lockout,
		blacklist:          blacklist,
		resetTokenValidity: time.Duration(resetTokenValidHours) * time.Hour,
		locks:              newAccountLocks(),
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	existing, err := s.store.GetAccountByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	verificationToken, err := randomToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()

	account := &domain.Account{
		ID:                 uuid.NewString(),
		Username:           input.Username,
		Email:              input.Email,
		PasswordHash:       hashed,
		Role:               constant.DefaultUserRole,
		Verified:           false,
		VerificationToken:  verificationToken,
		VerificationExpiry: now.Add(constant.VerificationTokenValidHours * time.Hour),
		MfaEnabled:         false,
		PasswordChangedAt:  now,
		CreatedAt:          now,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	// Registration does not log the user in; the verification token travels
	// to the account holder through the (external) mail delivery.
	return account, nil
}

// Authenticate verifies email+password and records the attempt in the ledger.
// Unknown account and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password, origin string) (*domain.Account, error) {
	account, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if account == nil || !s.hasher.Verify(password, account.PasswordHash) {
		var accountID *string
		if account != nil {
			accountID = &account.ID
		}
		s.lockout.RecordAttempt(ctx, accountID, email, origin, false)
		return nil, autherror.ErrInvalidCredentials
	}

	s.lockout.RecordAttempt(ctx, &account.ID, email, origin, true)

	return account, nil
}

// lookupByEmail is the internal no-password account fetch. It is deliberately
// unexported: nothing reachable from the HTTP edge returns an authenticated
// account without a credential check.
func (s *UserService) lookupByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return account, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	locked, err := s.lockout.IsLocked(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, autherror.ErrTooManyLoginAttempts
	}

	account, err := s.Authenticate(ctx, input.Email, input.Password, input.IPAddress)
	if err != nil {
		return nil, err
	}

	if account.MfaEnabled {
		if input.BackupCode != "" {
			ok, err := s.backupCodes.Consume(ctx, account.ID, input.BackupCode)
			if err != nil {
				return nil, err
			}
			s.lockout.RecordMfaAttempt(ctx, &account.ID, account.Email, ok)
			if !ok {
				return nil, autherror.ErrInvalidMfaCode
			}
		} else if err := s.VerifyMfa(ctx, account.ID, input.MfaCode); err != nil {
			return nil, err
		}
	}

	accessToken, _, err := s.tokenService.Generate(account)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   constant.DefaultTokenType,
		ExpiresIn:   int(s.tokenService.GetExpiry().Seconds()),
	}, nil
}

// Logout blacklists the presented token for the remainder of its lifetime. A
// cryptographically valid token can thereby be administratively dead.
func (s *UserService) Logout(token string) error {
	claims, err := s.tokenService.Verify(token)
	if err != nil {
		return autherror.ErrTokenInvalid
	}

	s.blacklist.Add(token, time.Until(claims.ExpiresAt.Time))

	return nil
}

func (s *UserService) IsTokenRevoked(token string) bool {
	return s.blacklist.Contains(token)
}

func (s *UserService) VerifyEmail(ctx context.Context, email, token string) error {
	account, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrTokenInvalid
	}
	if account.Verified {
		return autherror.ErrAccountNotPending
	}
	if time.Now().After(account.VerificationExpiry) {
		return autherror.ErrTokenExpired
	}
	if account.VerificationToken == "" ||
		subtle.ConstantTimeCompare([]byte(account.VerificationToken), []byte(token)) != 1 {
		return autherror.ErrTokenInvalid
	}

	return s.store.MarkAccountVerified(ctx, account.ID)
}

// SetupMfa generates a pending factor; MFA stays disabled until the account
// holder proves possession of the secret via EnableMfa.
func (s *UserService) SetupMfa(ctx context.Context, accountID string) (*dto.MfaSetupOutput, error) {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	secret, err := s.otp.GenerateSecret()
	if err != nil {
		return nil, err
	}

	factor := &domain.MfaFactor{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Secret:    secret,
		CreatedAt: time.Now(),
		Used:      false,
		Active:    false,
	}
	if err := s.store.CreateMfaFactor(ctx, factor); err != nil {
		return nil, err
	}

	return &dto.MfaSetupOutput{
		Secret:          secret,
		ProvisioningURI: s.otp.ProvisioningURI(secret, account.Email),
	}, nil
}

// EnableMfa binds the most recent pending factor once its code verifies, marks
// it active, flips the account flag, and issues a fresh backup-code batch.
// Failure leaves all state unchanged.
func (s *UserService) EnableMfa(ctx context.Context, accountID, code string) ([]string, error) {
	lock := s.locks.lock(accountID)
	defer lock.Unlock()

	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	factor, err := s.store.GetPendingMfaFactor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if factor == nil {
		return nil, autherror.ErrMfaNotPending
	}

	if !s.otp.VerifyCode(factor.Secret, code) {
		return nil, autherror.ErrInvalidMfaCode
	}

	// Only one factor governs verification at a time.
	if err := s.store.DeactivateMfaFactors(ctx, accountID); err != nil {
		return nil, err
	}
	activated, err := s.store.ActivateMfaFactor(ctx, factor.ID)
	if err != nil {
		return nil, err
	}
	if !activated {
		return nil, autherror.ErrMfaNotPending
	}

	if err := s.store.SetMfaEnabled(ctx, accountID, true); err != nil {
		return nil, err
	}

	return s.backupCodes.Generate(ctx, accountID)
}

// VerifyMfa checks a code for the account. With MFA disabled and no pending
// factor, access is permitted: that is the explicit "MFA not configured"
// passthrough, taken only when the factor lookup itself succeeded.
func (s *UserService) VerifyMfa(ctx context.Context, accountID, code string) error {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrAccountNotFound
	}

	if !account.MfaEnabled {
		factor, err := s.store.GetPendingMfaFactor(ctx, accountID)
		if err != nil {
			return err
		}
		if factor == nil {
			return nil
		}
		if !s.otp.VerifyCode(factor.Secret, code) {
			return autherror.ErrInvalidMfaCode
		}
		return nil
	}

	throttled, err := s.lockout.IsMfaThrottled(ctx, account.Email)
	if err != nil {
		return err
	}
	if throttled {
		return autherror.ErrTooManyLoginAttempts
	}

	factor, err := s.store.GetActiveMfaFactor(ctx, accountID)
	if err != nil {
		return err
	}
	if factor == nil {
		return autherror.ErrInvalidMfaCode
	}

	ok := s.otp.VerifyCode(factor.Secret, code)
	// The success row doubles as the failure-counter reset.
	s.lockout.RecordMfaAttempt(ctx, &account.ID, account.Email, ok)
	if !ok {
		return autherror.ErrInvalidMfaCode
	}

	return nil
}

// DisableMfa turns MFA off. A supplied backup code must be valid and unused;
// empty input is accepted as an authorized bypass for a caller that already
// holds an authenticated session.
func (s *UserService) DisableMfa(ctx context.Context, accountID, backupCode string) error {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrAccountNotFound
	}

	if backupCode != "" {
		ok, err := s.backupCodes.Consume(ctx, accountID, backupCode)
		if err != nil {
			return err
		}
		if !ok {
			return autherror.ErrInvalidMfaCode
		}
	}

	if err := s.store.SetMfaEnabled(ctx, accountID, false); err != nil {
		return err
	}
	if err := s.store.DeactivateMfaFactors(ctx, accountID); err != nil {
		return err
	}

	return s.backupCodes.DeleteAll(ctx, accountID)
}

// GeneratePasswordResetToken supersedes all prior reset tokens and returns the
// raw token exactly once; only its hash is stored.
func (s *UserService) GeneratePasswordResetToken(ctx context.Context, accountID string) (string, error) {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", autherror.ErrAccountNotFound
	}

	if err := s.store.InvalidatePasswordResetTokens(ctx, accountID); err != nil {
		return "", err
	}

	raw, err := randomToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := &domain.PasswordResetToken{
		ID:        uuid.NewString(),
		AccountID: accountID,
		TokenHash: hashToken(raw),
		CreatedAt: now,
		ExpiresAt: now.Add(s.resetTokenValidity),
	}
	if err := s.store.CreatePasswordResetToken(ctx, token); err != nil {
		return "", err
	}

	return raw, nil
}

func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	account, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", autherror.ErrAccountNotFound
	}

	return s.GeneratePasswordResetToken(ctx, account.ID)
}

func (s *UserService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	account, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrTokenInvalid
	}

	record, err := s.store.GetPasswordResetToken(ctx, account.ID, hashToken(token))
	if err != nil {
		return err
	}
	if record == nil {
		return autherror.ErrTokenInvalid
	}
	if time.Now().After(record.ExpiresAt) {
		return autherror.ErrTokenExpired
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePasswordHash(ctx, account.ID, hashed); err != nil {
		return err
	}

	return s.store.ConsumePasswordResetToken(ctx, record.ID)
}

func (s *UserService) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrAccountNotFound
	}

	if !s.hasher.Verify(oldPassword, account.PasswordHash) {
		return autherror.ErrInvalidCredentials
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.store.UpdatePasswordHash(ctx, accountID, hashed)
}

func randomToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
