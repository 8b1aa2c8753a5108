package dto

type MfaSetupOutput struct {
	Secret          string `json:"secret"`
	ProvisioningURI string `json:"provisioning_uri"`
}

type MfaEnableInput struct {
	Code string `json:"code"`
}

type MfaEnableOutput struct {
	BackupCodes []string `json:"backup_codes"`
}

type MfaDisableInput struct {
	BackupCode string `json:"backup_code"`
}
