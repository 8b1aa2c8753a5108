package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RedMake/comavi-auth/internal/auth/domain"
	"github.com/RedMake/comavi-auth/pkg/constant"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. Tests substitute a
// pgxmock pool through it.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, username, email, password_hash, role, verified,
		verification_token, verification_expiry, mfa_enabled, password_changed_at, created_at`

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role, &a.Verified,
		&a.VerificationToken, &a.VerificationExpiry, &a.MfaEnabled, &a.PasswordChangedAt, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE email = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) CreateAccount(ctx context.Context, a *domain.Account) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO accounts (id, username, email, password_hash, role, verified,
            verification_token, verification_expiry, mfa_enabled, password_changed_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.Verified,
		a.VerificationToken, a.VerificationExpiry, a.MfaEnabled, a.PasswordChangedAt, a.CreatedAt)

	return err
}

func (r *PostgresRepository) MarkAccountVerified(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET verified = TRUE, verification_token = '', verification_expiry = now()
		WHERE id = $1
	`, id)
	return err
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET password_hash = $2, password_changed_at = now()
		WHERE id = $1
	`, id, hash)
	return err
}

func (r *PostgresRepository) SetMfaEnabled(ctx context.Context, id string, enabled bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET mfa_enabled = $2
		WHERE id = $1
	`, id, enabled)
	return err
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, accountID *string, email, origin string, success bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, account_id, email, origin, attempt_time, successful)
		VALUES (gen_random_uuid(), $1, $2, $3, now(), $4)
	`, accountID, email, origin, success)
	return err
}

func (r *PostgresRepository) CountRecentFailedAttempts(ctx context.Context, email string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM login_attempts
		WHERE email = $1 AND origin <> $2 AND successful = FALSE AND attempt_time >= $3
	`
	var count int
	err := r.db.QueryRow(ctx, query, email, constant.MfaAttemptOrigin, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count failed login attempts: %w", err)
	}
	return count, nil
}

// CountRecentFailedMfaAttempts ignores failures older than the most recent
// successful MFA attempt, so a success resets the running counter without
// mutating the append-only ledger.
func (r *PostgresRepository) CountRecentFailedMfaAttempts(ctx context.Context, email string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM login_attempts
		WHERE email = $1 AND origin = $2 AND successful = FALSE AND attempt_time >= $3
		  AND attempt_time > COALESCE((
		      SELECT MAX(attempt_time)
		      FROM login_attempts
		      WHERE email = $1 AND origin = $2 AND successful = TRUE
		  ), 'epoch'::timestamptz)
	`
	var count int
	err := r.db.QueryRow(ctx, query, email, constant.MfaAttemptOrigin, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count failed mfa attempts: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) CreateMfaFactor(ctx context.Context, f *domain.MfaFactor) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO mfa_factors (id, account_id, secret, created_at, used, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, f.ID, f.AccountID, f.Secret, f.CreatedAt, f.Used, f.Active)
	return err
}

func (r *PostgresRepository) scanMfaFactor(row pgx.Row) (*domain.MfaFactor, error) {
	var f domain.MfaFactor
	err := row.Scan(&f.ID, &f.AccountID, &f.Secret, &f.CreatedAt, &f.Used, &f.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan mfa factor: %w", err)
	}
	return &f, nil
}

func (r *PostgresRepository) GetPendingMfaFactor(ctx context.Context, accountID string) (*domain.MfaFactor, error) {
	query := `
		SELECT id, account_id, secret, created_at, used, active
		FROM mfa_factors
		WHERE account_id = $1 AND used = FALSE
		ORDER BY created_at DESC
		LIMIT 1;
	`
	return r.scanMfaFactor(r.db.QueryRow(ctx, query, accountID))
}

func (r *PostgresRepository) GetActiveMfaFactor(ctx context.Context, accountID string) (*domain.MfaFactor, error) {
	query := `
		SELECT id, account_id, secret, created_at, used, active
		FROM mfa_factors
		WHERE account_id = $1 AND active = TRUE
		LIMIT 1;
	`
	return r.scanMfaFactor(r.db.QueryRow(ctx, query, accountID))
}

// ActivateMfaFactor is a conditional update: it only fires on a factor that has
// not been consumed yet, which keeps concurrent enable attempts from binding
// the same secret twice.
func (r *PostgresRepository) ActivateMfaFactor(ctx context.Context, factorID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE mfa_factors
		SET used = TRUE, active = TRUE
		WHERE id = $1 AND used = FALSE
	`, factorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) DeactivateMfaFactors(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE mfa_factors
		SET active = FALSE
		WHERE account_id = $1 AND active = TRUE
	`, accountID)
	return err
}

func (r *PostgresRepository) CreateBackupCodes(ctx context.Context, codes []*domain.BackupCode) error {
	for _, c := range codes {
		_, err := r.db.Exec(ctx, `
			INSERT INTO backup_codes (id, account_id, code, created_at, used)
			VALUES ($1, $2, $3, $4, $5)
		`, c.ID, c.AccountID, c.Code, c.CreatedAt, c.Used)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) GetUnusedBackupCodes(ctx context.Context, accountID string) ([]*domain.BackupCode, error) {
	query := `
		SELECT id, account_id, code, created_at, used
		FROM backup_codes
		WHERE account_id = $1 AND used = FALSE
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get backup codes: %w", err)
	}
	defer rows.Close()

	var codes []*domain.BackupCode
	for rows.Next() {
		var c domain.BackupCode
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Code, &c.CreatedAt, &c.Used); err != nil {
			return nil, fmt.Errorf("failed to scan backup code: %w", err)
		}
		codes = append(codes, &c)
	}
	return codes, rows.Err()
}

// ConsumeBackupCode marks a code used only if it is still unused; the returned
// bool reports whether this caller won the update.
func (r *PostgresRepository) ConsumeBackupCode(ctx context.Context, codeID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE backup_codes
		SET used = TRUE
		WHERE id = $1 AND used = FALSE
	`, codeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) DeleteBackupCodes(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM backup_codes
		WHERE account_id = $1
	`, accountID)
	return err
}

func (r *PostgresRepository) CreatePasswordResetToken(ctx context.Context, t *domain.PasswordResetToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (id, account_id, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, t.ID, t.AccountID, t.TokenHash, t.CreatedAt, t.ExpiresAt)
	return err
}

func (r *PostgresRepository) GetPasswordResetToken(ctx context.Context, accountID, tokenHash string) (*domain.PasswordResetToken, error) {
	query := `
		SELECT id, account_id, token_hash, created_at, expires_at
		FROM password_reset_tokens
		WHERE account_id = $1 AND token_hash = $2
		LIMIT 1;
	`
	var t domain.PasswordResetToken
	err := r.db.QueryRow(ctx, query, accountID, tokenHash).
		Scan(&t.ID, &t.AccountID, &t.TokenHash, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get password reset token: %w", err)
	}
	return &t, nil
}

func (r *PostgresRepository) InvalidatePasswordResetTokens(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM password_reset_tokens
		WHERE account_id = $1
	`, accountID)
	return err
}

func (r *PostgresRepository) ConsumePasswordResetToken(ctx context.Context, tokenID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM password_reset_tokens
		WHERE id = $1
	`, tokenID)
	return err
}
