package dto

type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	MfaCode    string `json:"mfa_code"`
	BackupCode string `json:"backup_code"`
	IPAddress  string `json:"-"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
