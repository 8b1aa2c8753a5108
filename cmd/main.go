package main

import (
	"context"
	"log"
	"time"

	"github.com/RedMake/comavi-auth/config"
	"github.com/RedMake/comavi-auth/db"
	"github.com/RedMake/comavi-auth/internal/auth/handler"
	repo "github.com/RedMake/comavi-auth/internal/auth/repository/postgres"
	"github.com/RedMake/comavi-auth/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	store := repo.NewPostgresRepository(pool)

	hasher := service.NewPasswordHasher()
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenIssuer, cfg.TokenAudience, cfg.TokenExpiryMin)
	otpService := service.NewOtpService(cfg.TotpIssuer, cfg.TotpSecretLength, cfg.TotpStepSeconds, cfg.TotpDigits)
	backupCodes := service.NewBackupCodeService(store, cfg.BackupCodeCount)
	lockout := service.NewLockoutService(store, cfg.LockoutMaxFailedAttempts, cfg.LockoutWindowMin)

	blacklist := service.NewTokenBlacklist(time.Duration(cfg.BlacklistSweepMin) * time.Minute)
	defer blacklist.Stop()

	userService := service.NewUserService(store, tokenService, hasher, otpService,
		backupCodes, lockout, blacklist, cfg.ResetTokenValidHours)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
