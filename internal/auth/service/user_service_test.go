package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/RedMake/comavi-auth/internal/auth/domain"
	"github.com/RedMake/comavi-auth/internal/auth/dto"
	"github.com/RedMake/comavi-auth/internal/auth/service"
	autherror "github.com/RedMake/comavi-auth/internal/errors"
	"github.com/RedMake/comavi-auth/internal/mocks"
	"github.com/RedMake/comavi-auth/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userServiceFixture struct {
	store     *mocks.MockStore
	tokens    *mocks.MockTokenGenerator
	blacklist *service.TokenBlacklist
	svc       *service.UserService
}

func newUserServiceFixture(t *testing.T, ctrl *gomock.Controller) *userServiceFixture {
	t.Helper()

	mockStore := mocks.NewMockStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	blacklist := service.NewTokenBlacklist(time.Hour)
	t.Cleanup(blacklist.Stop)

	svc := service.NewUserService(
		mockStore,
		mockTokens,
		service.NewPasswordHasher(),
		service.NewOtpService("COMAVI", 20, 30, 6),
		service.NewBackupCodeService(mockStore, 8),
		service.NewLockoutService(mockStore, 5, 15),
		blacklist,
		2,
	)

	return &userServiceFixture{
		store:     mockStore,
		tokens:    mockTokens,
		blacklist: blacklist,
		svc:       svc,
	}
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func totpCode(t *testing.T, secret string) string {
	t.Helper()
	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	return code
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	input := dto.RegisterInput{
		Username: "driver01",
		Email:    "driver01@example.com",
		Password: "password123",
	}

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), input.Email).Return(nil, nil)
	f.store.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)

	account, err := f.svc.Register(context.Background(), input)

	assert.NoError(t, err)
	assert.NotNil(t, account)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, input.Email, account.Email)
	assert.Equal(t, constant.DefaultUserRole, account.Role)
	assert.False(t, account.Verified)
	assert.False(t, account.MfaEnabled)
	assert.NotEmpty(t, account.VerificationToken)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), account.VerificationExpiry, 5*time.Second)
	assert.NotEqual(t, input.Password, account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)))
}

func TestUserService_Register_EmailAlreadyInUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	input := dto.RegisterInput{Username: "driver01", Email: "driver01@example.com", Password: "password123"}

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), input.Email).
		Return(&domain.Account{ID: "existing", Email: input.Email}, nil)

	account, err := f.svc.Register(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	assert.Nil(t, account)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "password123"),
	}

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, "10.0.0.1", true).Return(nil)

	got, err := f.svc.Authenticate(context.Background(), account.Email, "password123", "10.0.0.1")

	assert.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "password123"),
	}

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, "10.0.0.1", false).Return(nil)

	got, err := f.svc.Authenticate(context.Background(), account.Email, "wrong", "10.0.0.1")

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, got)
}

func TestUserService_Authenticate_UnknownEmailSameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Nil(), "nobody@example.com", "10.0.0.1", false).Return(nil)

	got, err := f.svc.Authenticate(context.Background(), "nobody@example.com", "password123", "10.0.0.1")

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, got)
}

func TestUserService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "password123"),
	}

	f.store.EXPECT().CountRecentFailedAttempts(gomock.Any(), account.Email, gomock.Any()).Return(0, nil)
	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, "10.0.0.1", true).Return(nil)
	f.tokens.EXPECT().Generate(account).Return("signed-token", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().GetExpiry().Return(time.Hour)

	resp, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email:     account.Email,
		Password:  "password123",
		IPAddress: "10.0.0.1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, constant.DefaultTokenType, resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestUserService_Login_LockedOutEvenWithCorrectPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	// Five recent failures lock the account; the password is never even checked.
	f.store.EXPECT().CountRecentFailedAttempts(gomock.Any(), "driver01@example.com", gomock.Any()).Return(5, nil)

	resp, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email:     "driver01@example.com",
		Password:  "password123",
		IPAddress: "10.0.0.1",
	})

	assert.ErrorIs(t, err, autherror.ErrTooManyLoginAttempts)
	assert.Nil(t, resp)
}

func TestUserService_Login_WithTotpCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	secret := "JBSWY3DPEHPK3PXP"
	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "password123"),
		MfaEnabled:   true,
	}
	factor := &domain.MfaFactor{ID: "factor-1", AccountID: account.ID, Secret: secret, Active: true}

	f.store.EXPECT().CountRecentFailedAttempts(gomock.Any(), account.Email, gomock.Any()).Return(0, nil)
	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, "10.0.0.1", true).Return(nil)
	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().CountRecentFailedMfaAttempts(gomock.Any(), account.Email, gomock.Any()).Return(0, nil)
	f.store.EXPECT().GetActiveMfaFactor(gomock.Any(), account.ID).Return(factor, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, constant.MfaAttemptOrigin, true).Return(nil)
	f.tokens.EXPECT().Generate(account).Return("signed-token", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().GetExpiry().Return(time.Hour)

	resp, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email:     account.Email,
		Password:  "password123",
		MfaCode:   totpCode(t, secret),
		IPAddress: "10.0.0.1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", resp.AccessToken)
}

func TestUserService_Login_WithWrongTotpCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "password123"),
		MfaEnabled:   true,
	}
	factor := &domain.MfaFactor{ID: "factor-1", AccountID: account.ID, Secret: "JBSWY3DPEHPK3PXP", Active: true}

	f.store.EXPECT().CountRecentFailedAttempts(gomock.Any(), account.Email, gomock.Any()).Return(0, nil)
	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, "10.0.0.1", true).Return(nil)
	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().CountRecentFailedMfaAttempts(gomock.Any(), account.Email, gomock.Any()).Return(0, nil)
	f.store.EXPECT().GetActiveMfaFactor(gomock.Any(), account.ID).Return(factor, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, constant.MfaAttemptOrigin, false).Return(nil)

	resp, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email:     account.Email,
		Password:  "password123",
		MfaCode:   "000000",
		IPAddress: "10.0.0.1",
	})

	assert.ErrorIs(t, err, autherror.ErrInvalidMfaCode)
	assert.Nil(t, resp)
}

func TestUserService_Login_WithBackupCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "password123"),
		MfaEnabled:   true,
	}
	unused := []*domain.BackupCode{{ID: "code-1", AccountID: account.ID, Code: "A1B2C3D4E5"}}

	f.store.EXPECT().CountRecentFailedAttempts(gomock.Any(), account.Email, gomock.Any()).Return(0, nil)
	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, "10.0.0.1", true).Return(nil)
	f.store.EXPECT().GetUnusedBackupCodes(gomock.Any(), account.ID).Return(unused, nil)
	f.store.EXPECT().ConsumeBackupCode(gomock.Any(), "code-1").Return(true, nil)
	f.store.EXPECT().RecordLoginAttempt(gomock.Any(), &account.ID, account.Email, constant.MfaAttemptOrigin, true).Return(nil)
	f.tokens.EXPECT().Generate(account).Return("signed-token", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().GetExpiry().Return(time.Hour)

	resp, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email:      account.Email,
		Password:   "password123",
		BackupCode: "a1b2c-3d4e5",
		IPAddress:  "10.0.0.1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", resp.AccessToken)
}

func TestUserService_LogoutAndRevocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	claims := &service.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "account-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	f.tokens.EXPECT().Verify("live-token").Return(claims, nil)

	assert.False(t, f.svc.IsTokenRevoked("live-token"))
	assert.NoError(t, f.svc.Logout("live-token"))
	assert.True(t, f.svc.IsTokenRevoked("live-token"))
}

func TestUserService_LogoutRejectsInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	f.tokens.EXPECT().Verify("garbage").Return(nil, errors.New("bad token"))

	assert.ErrorIs(t, f.svc.Logout("garbage"), autherror.ErrTokenInvalid)
}

func TestUserService_VerifyEmail(t *testing.T) {
	newPending := func() *domain.Account {
		return &domain.Account{
			ID:                 "account-1",
			Email:              "driver01@example.com",
			Verified:           false,
			VerificationToken:  "verify-token",
			VerificationExpiry: time.Now().Add(time.Hour),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Account)
		token   string
		wantErr error
	}{
		{"success", nil, "verify-token", nil},
		{"wrong token", nil, "other-token", autherror.ErrTokenInvalid},
		{"expired", func(a *domain.Account) { a.VerificationExpiry = time.Now().Add(-time.Hour) }, "verify-token", autherror.ErrTokenExpired},
		{"already verified", func(a *domain.Account) { a.Verified = true }, "verify-token", autherror.ErrAccountNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newUserServiceFixture(t, ctrl)

			account := newPending()
			if tt.mutate != nil {
				tt.mutate(account)
			}

			f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
			if tt.wantErr == nil {
				f.store.EXPECT().MarkAccountVerified(gomock.Any(), account.ID).Return(nil)
			}

			err := f.svc.VerifyEmail(context.Background(), account.Email, tt.token)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUserService_VerifyEmail_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	err := f.svc.VerifyEmail(context.Background(), "nobody@example.com", "any")
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestUserService_SetupMfa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}

	var created *domain.MfaFactor
	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().CreateMfaFactor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, factor *domain.MfaFactor) error {
			created = factor
			return nil
		})

	setup, err := f.svc.SetupMfa(context.Background(), account.ID)

	assert.NoError(t, err)
	assert.NotEmpty(t, setup.Secret)
	assert.True(t, strings.HasPrefix(setup.ProvisioningURI, "otpauth://totp/"))
	assert.Contains(t, setup.ProvisioningURI, account.Email)

	assert.Equal(t, setup.Secret, created.Secret)
	assert.Equal(t, account.ID, created.AccountID)
	assert.False(t, created.Active)
	assert.False(t, created.Used)
}

func TestUserService_EnableMfa_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	secret := "JBSWY3DPEHPK3PXP"
	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}
	factor := &domain.MfaFactor{ID: "factor-1", AccountID: account.ID, Secret: secret}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetPendingMfaFactor(gomock.Any(), account.ID).Return(factor, nil)
	f.store.EXPECT().DeactivateMfaFactors(gomock.Any(), account.ID).Return(nil)
	f.store.EXPECT().ActivateMfaFactor(gomock.Any(), factor.ID).Return(true, nil)
	f.store.EXPECT().SetMfaEnabled(gomock.Any(), account.ID, true).Return(nil)
	f.store.EXPECT().DeleteBackupCodes(gomock.Any(), account.ID).Return(nil)
	f.store.EXPECT().CreateBackupCodes(gomock.Any(), gomock.Any()).Return(nil)

	codes, err := f.svc.EnableMfa(context.Background(), account.ID, totpCode(t, secret))

	assert.NoError(t, err)
	assert.Len(t, codes, 8)
}

func TestUserService_EnableMfa_WrongCodeLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}
	factor := &domain.MfaFactor{ID: "factor-1", AccountID: account.ID, Secret: "JBSWY3DPEHPK3PXP"}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetPendingMfaFactor(gomock.Any(), account.ID).Return(factor, nil)

	codes, err := f.svc.EnableMfa(context.Background(), account.ID, "000000")

	assert.ErrorIs(t, err, autherror.ErrInvalidMfaCode)
	assert.Nil(t, codes)
}

func TestUserService_EnableMfa_NoPendingFactor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetPendingMfaFactor(gomock.Any(), account.ID).Return(nil, nil)

	codes, err := f.svc.EnableMfa(context.Background(), account.ID, "123456")

	assert.ErrorIs(t, err, autherror.ErrMfaNotPending)
	assert.Nil(t, codes)
}

func TestUserService_EnableMfa_LostActivationRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	secret := "JBSWY3DPEHPK3PXP"
	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}
	factor := &domain.MfaFactor{ID: "factor-1", AccountID: account.ID, Secret: secret}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetPendingMfaFactor(gomock.Any(), account.ID).Return(factor, nil)
	f.store.EXPECT().DeactivateMfaFactors(gomock.Any(), account.ID).Return(nil)
	f.store.EXPECT().ActivateMfaFactor(gomock.Any(), factor.ID).Return(false, nil)

	codes, err := f.svc.EnableMfa(context.Background(), account.ID, totpCode(t, secret))

	assert.ErrorIs(t, err, autherror.ErrMfaNotPending)
	assert.Nil(t, codes)
}

func TestUserService_VerifyMfa_PassthroughWhenNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com", MfaEnabled: false}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetPendingMfaFactor(gomock.Any(), account.ID).Return(nil, nil)

	assert.NoError(t, f.svc.VerifyMfa(context.Background(), account.ID, ""))
}

func TestUserService_VerifyMfa_NoPassthroughOnLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com", MfaEnabled: false}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetPendingMfaFactor(gomock.Any(), account.ID).Return(nil, errors.New("db down"))

	assert.Error(t, f.svc.VerifyMfa(context.Background(), account.ID, ""))
}

func TestUserService_VerifyMfa_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com", MfaEnabled: true}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().CountRecentFailedMfaAttempts(gomock.Any(), account.Email, gomock.Any()).Return(5, nil)

	err := f.svc.VerifyMfa(context.Background(), account.ID, "123456")
	assert.ErrorIs(t, err, autherror.ErrTooManyLoginAttempts)
}

func TestUserService_DisableMfa_WithBackupCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com", MfaEnabled: true}
	unused := []*domain.BackupCode{{ID: "code-1", AccountID: account.ID, Code: "A1B2C3D4E5"}}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetUnusedBackupCodes(gomock.Any(), account.ID).Return(unused, nil)
	f.store.EXPECT().ConsumeBackupCode(gomock.Any(), "code-1").Return(true, nil)
	f.store.EXPECT().SetMfaEnabled(gomock.Any(), account.ID, false).Return(nil)
	f.store.EXPECT().DeactivateMfaFactors(gomock.Any(), account.ID).Return(nil)
	f.store.EXPECT().DeleteBackupCodes(gomock.Any(), account.ID).Return(nil)

	assert.NoError(t, f.svc.DisableMfa(context.Background(), account.ID, "A1B2C-3D4E5"))
}

func TestUserService_DisableMfa_InvalidBackupCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com", MfaEnabled: true}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().GetUnusedBackupCodes(gomock.Any(), account.ID).Return(nil, nil)

	err := f.svc.DisableMfa(context.Background(), account.ID, "FFFFF-FFFFF")
	assert.ErrorIs(t, err, autherror.ErrInvalidMfaCode)
}

func TestUserService_DisableMfa_AuthenticatedBypass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com", MfaEnabled: true}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().SetMfaEnabled(gomock.Any(), account.ID, false).Return(nil)
	f.store.EXPECT().DeactivateMfaFactors(gomock.Any(), account.ID).Return(nil)
	f.store.EXPECT().DeleteBackupCodes(gomock.Any(), account.ID).Return(nil)

	assert.NoError(t, f.svc.DisableMfa(context.Background(), account.ID, ""))
}

func TestUserService_RequestPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}

	var created *domain.PasswordResetToken
	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().InvalidatePasswordResetTokens(gomock.Any(), account.ID).Return(nil)
	f.store.EXPECT().CreatePasswordResetToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *domain.PasswordResetToken) error {
			created = token
			return nil
		})

	raw, err := f.svc.RequestPasswordReset(context.Background(), account.Email)

	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	// Only the hash is persisted; the raw token never reaches the store.
	assert.Equal(t, sha256Hex(raw), created.TokenHash)
	assert.NotContains(t, created.TokenHash, raw)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), created.ExpiresAt, 5*time.Second)
}

func TestUserService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	raw, err := f.svc.RequestPasswordReset(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, autherror.ErrAccountNotFound)
	assert.Empty(t, raw)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}
	record := &domain.PasswordResetToken{
		ID:        "reset-1",
		AccountID: account.ID,
		TokenHash: sha256Hex("raw-reset-token"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	var newHash string
	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().GetPasswordResetToken(gomock.Any(), account.ID, record.TokenHash).Return(record, nil)
	f.store.EXPECT().UpdatePasswordHash(gomock.Any(), account.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, hash string) error {
			newHash = hash
			return nil
		})
	f.store.EXPECT().ConsumePasswordResetToken(gomock.Any(), record.ID).Return(nil)

	err := f.svc.ResetPassword(context.Background(), account.Email, "raw-reset-token", "new-password")

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")))
}

func TestUserService_ResetPassword_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}
	record := &domain.PasswordResetToken{
		ID:        "reset-1",
		AccountID: account.ID,
		TokenHash: sha256Hex("raw-reset-token"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().GetPasswordResetToken(gomock.Any(), account.ID, record.TokenHash).Return(record, nil)

	err := f.svc.ResetPassword(context.Background(), account.Email, "raw-reset-token", "new-password")
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
}

func TestUserService_ResetPassword_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "account-1", Email: "driver01@example.com"}

	f.store.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.store.EXPECT().GetPasswordResetToken(gomock.Any(), account.ID, sha256Hex("bogus")).Return(nil, nil)

	err := f.svc.ResetPassword(context.Background(), account.Email, "bogus", "new-password")
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "old-password"),
	}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)
	f.store.EXPECT().UpdatePasswordHash(gomock.Any(), account.ID, gomock.Any()).Return(nil)

	assert.NoError(t, f.svc.ChangePassword(context.Background(), account.ID, "old-password", "new-password"))
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "account-1",
		Email:        "driver01@example.com",
		PasswordHash: hashedPassword(t, "old-password"),
	}

	f.store.EXPECT().GetAccountByID(gomock.Any(), account.ID).Return(account, nil)

	err := f.svc.ChangePassword(context.Background(), account.ID, "wrong", "new-password")
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}
