package service

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// OtpService generates and verifies RFC 6238 time-based codes. Verification
// accepts the current step plus one step either side to absorb client clock
// drift; that bounded replay window is an accepted tradeoff.
type OtpService struct {
	issuer       string
	secretLength int
	period       uint
	digits       otp.Digits
}

func NewOtpService(issuer string, secretLength, stepSeconds, digits int) *OtpService {
	return &OtpService{
		issuer:       issuer,
		secretLength: secretLength,
		period:       uint(stepSeconds),
		digits:       otp.Digits(digits),
	}
}

func (o *OtpService) GenerateSecret() (string, error) {
	raw := make([]byte, o.secretLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate totp secret: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw), nil
}

func (o *OtpService) ProvisioningURI(secret, accountLabel string) string {
	label := url.PathEscape(o.issuer + ":" + accountLabel)

	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", o.issuer)
	v.Set("algorithm", "SHA1")
	v.Set("digits", strconv.Itoa(o.digits.Length()))
	v.Set("period", strconv.FormatUint(uint64(o.period), 10))

	return "otpauth://totp/" + label + "?" + v.Encode()
}

func (o *OtpService) VerifyCode(secret, code string) bool {
	return o.verifyCodeAt(secret, code, time.Now())
}

func (o *OtpService) verifyCodeAt(secret, code string, at time.Time) bool {
	code = strings.TrimSpace(code)
	if secret == "" || code == "" || !isNumeric(code) {
		return false
	}

	ok, err := totp.ValidateCustom(code, secret, at, totp.ValidateOpts{
		Period:    o.period,
		Skew:      1,
		Digits:    o.digits,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false
	}
	return ok
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
