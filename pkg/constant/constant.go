package constant

const (
	DefaultUserRole  = "user"
	DefaultTokenType = "Bearer"

	// MfaAttemptOrigin is the reserved origin value that marks a login_attempts
	// row as an MFA verification attempt rather than a primary login.
	MfaAttemptOrigin = "mfa"

	// VerificationTokenValidHours bounds how long a registration email
	// verification token stays usable.
	VerificationTokenValidHours = 48
)
