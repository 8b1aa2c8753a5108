package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/verify-email", h.VerifyEmail)
	app.Post("/api/v1/password-reset/request", h.RequestPasswordReset)
	app.Post("/api/v1/password-reset/confirm", h.ConfirmPasswordReset)

	// Session-holding endpoints
	authed := app.Group("/api/v1", h.RequireAuth)
	authed.Delete("/session", h.Logout)
	authed.Post("/password", h.ChangePassword)
	authed.Post("/mfa/setup", h.SetupMfa)
	authed.Post("/mfa/enable", h.EnableMfa)
	authed.Post("/mfa/disable", h.DisableMfa)
}
