// Package bootstrap wires up process-wide runtime dependencies: database,
// Redis, tracing, and the guaranteed platform admin account.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/models"
	"skillswap/internal/observability"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Runtime holds initialized process dependencies.
type Runtime struct {
	Config          *config.Config
	DB              *gorm.DB
	Redis           *redis.Client
	shutdownTracing func(context.Context) error
}

// InitRuntime establishes database, Redis, and tracing from configuration.
func InitRuntime(cfg *config.Config) (*Runtime, error) {
	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "skillswap-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.TracingOTLPEndpoint,
		SamplerRatio:   cfg.TracingSamplerRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	rt := &Runtime{
		Config:          cfg,
		DB:              db,
		Redis:           cache.GetClient(),
		shutdownTracing: shutdownTracing,
	}

	if err := rt.EnsurePlatformAdmin(context.Background()); err != nil {
		return nil, err
	}

	return rt, nil
}

// Shutdown releases runtime resources.
func (rt *Runtime) Shutdown(ctx context.Context) error {
	var errs []error

	if rt.Redis != nil {
		if err := rt.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	if rt.DB != nil {
		if sqlDB, err := rt.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("database close: %w", err))
			}
		}
	}

	if rt.shutdownTracing != nil {
		if err := rt.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}

// EnsurePlatformAdmin guarantees at least one admin account exists. When
// BOOTSTRAP_ADMIN_EMAIL is configured, that account is created or promoted;
// otherwise a missing admin is only logged.
func (rt *Runtime) EnsurePlatformAdmin(ctx context.Context) error {
	db := rt.DB.WithContext(ctx)

	if rt.Config.BootstrapAdminEmail == "" {
		var admins int64
		if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
			return fmt.Errorf("count admins: %w", err)
		}
		if admins == 0 {
			log.Println("WARNING: no admin account exists and BOOTSTRAP_ADMIN_EMAIL is not set")
		}
		return nil
	}

	var user models.User
	err := db.Where("email = ?", rt.Config.BootstrapAdminEmail).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if rt.Config.BootstrapAdminPassword == "" {
			return errors.New("BOOTSTRAP_ADMIN_PASSWORD is required to create the bootstrap admin")
		}
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(rt.Config.BootstrapAdminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return fmt.Errorf("hash bootstrap admin password: %w", hashErr)
		}
		admin := models.User{
			Name:            rt.Config.BootstrapAdminName,
			Email:           rt.Config.BootstrapAdminEmail,
			PasswordHash:    string(hash),
			ProfileIsPublic: false,
			Role:            models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("create bootstrap admin: %w", err)
		}
		log.Printf("Created bootstrap admin account %s", admin.Email)
		return nil
	case err != nil:
		return fmt.Errorf("load bootstrap admin: %w", err)
	}

	if !user.IsAdmin() {
		if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
			return fmt.Errorf("promote bootstrap admin: %w", err)
		}
		log.Printf("Promoted %s to admin", user.Email)
	}
	return nil
}
