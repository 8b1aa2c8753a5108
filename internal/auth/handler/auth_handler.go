package handler

import (
	"errors"
	"log"

	"github.com/RedMake/comavi-auth/internal/auth/dto"
	"github.com/RedMake/comavi-auth/internal/auth/service"
	autherror "github.com/RedMake/comavi-auth/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

// statusForError maps the coarse error taxonomy to HTTP statuses; anything
// unexpected is logged and surfaced as a generic failure.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidMfaCode):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, autherror.ErrTooManyLoginAttempts):
		return fiber.StatusTooManyRequests, err.Error()
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenInvalid),
		errors.Is(err, autherror.ErrMfaNotPending),
		errors.Is(err, autherror.ErrAccountNotPending):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, autherror.ErrAccountNotFound):
		return fiber.StatusNotFound, err.Error()
	default:
		log.Printf("auth: unexpected error: %v", err)
		return fiber.StatusInternalServerError, "internal error"
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	status, msg := statusForError(err)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	account, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    account.ID,
		"email": account.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = c.IP()

	tokenPair, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var input dto.VerifyEmailInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.VerifyEmail(c.Context(), input.Email, input.Token); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"verified": true})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	if err := h.userService.Logout(token); err != nil {
		return errorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var input dto.PasswordResetRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	// The token travels by mail (external); an unknown email gets the same
	// response so the endpoint cannot be used to enumerate accounts.
	if _, err := h.userService.RequestPasswordReset(c.Context(), input.Email); err != nil &&
		!errors.Is(err, autherror.ErrAccountNotFound) {
		return errorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusAccepted)
}

func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var input dto.PasswordResetConfirmInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.ResetPassword(c.Context(), input.Email, input.Token, input.NewPassword); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"reset": true})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	accountID, _ := c.Locals(localAccountID).(string)
	if err := h.userService.ChangePassword(c.Context(), accountID, input.OldPassword, input.NewPassword); err != nil {
		return errorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) SetupMfa(c *fiber.Ctx) error {
	accountID, _ := c.Locals(localAccountID).(string)

	setup, err := h.userService.SetupMfa(c.Context(), accountID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(setup)
}

func (h *AuthHandler) EnableMfa(c *fiber.Ctx) error {
	var input dto.MfaEnableInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	accountID, _ := c.Locals(localAccountID).(string)
	backupCodes, err := h.userService.EnableMfa(c.Context(), accountID, input.Code)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.MfaEnableOutput{BackupCodes: backupCodes})
}

func (h *AuthHandler) DisableMfa(c *fiber.Ctx) error {
	var input dto.MfaDisableInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	accountID, _ := c.Locals(localAccountID).(string)
	if err := h.userService.DisableMfa(c.Context(), accountID, input.BackupCode); err != nil {
		return errorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
