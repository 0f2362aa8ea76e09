package bootstrap

import (
	"context"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRuntime(t *testing.T, cfg *config.Config) *Runtime {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	return &Runtime{Config: cfg, DB: db}
}

func TestEnsurePlatformAdmin_CreatesAccount(t *testing.T) {
	t.Parallel()
	rt := newTestRuntime(t, &config.Config{
		BootstrapAdminEmail:    "root@example.com",
		BootstrapAdminName:     "Platform Admin",
		BootstrapAdminPassword: "Str0ngBootstrap!",
	})

	require.NoError(t, rt.EnsurePlatformAdmin(context.Background()))

	var admin models.User
	require.NoError(t, rt.DB.Where("email = ?", "root@example.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.False(t, admin.ProfileIsPublic)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Str0ngBootstrap!")))
}

func TestEnsurePlatformAdmin_PromotesExistingUser(t *testing.T) {
	t.Parallel()
	rt := newTestRuntime(t, &config.Config{
		BootstrapAdminEmail: "member@example.com",
	})

	user := &models.User{
		Name:         "Member",
		Email:        "member@example.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
	}
	require.NoError(t, rt.DB.Create(user).Error)

	require.NoError(t, rt.EnsurePlatformAdmin(context.Background()))

	var reloaded models.User
	require.NoError(t, rt.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)
}

func TestEnsurePlatformAdmin_Idempotent(t *testing.T) {
	t.Parallel()
	rt := newTestRuntime(t, &config.Config{
		BootstrapAdminEmail:    "root@example.com",
		BootstrapAdminName:     "Platform Admin",
		BootstrapAdminPassword: "Str0ngBootstrap!",
	})

	require.NoError(t, rt.EnsurePlatformAdmin(context.Background()))
	require.NoError(t, rt.EnsurePlatformAdmin(context.Background()))

	var count int64
	require.NoError(t, rt.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsurePlatformAdmin_MissingPassword(t *testing.T) {
	t.Parallel()
	rt := newTestRuntime(t, &config.Config{
		BootstrapAdminEmail: "root@example.com",
	})

	err := rt.EnsurePlatformAdmin(context.Background())
	require.Error(t, err)
}

func TestEnsurePlatformAdmin_NoConfigIsNoop(t *testing.T) {
	t.Parallel()
	rt := newTestRuntime(t, &config.Config{})

	require.NoError(t, rt.EnsurePlatformAdmin(context.Background()))

	var count int64
	require.NoError(t, rt.DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
