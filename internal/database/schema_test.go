package database

import (
	"context"
	"testing"

	"skillswap/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		env         string
		destructive bool
		wantSQL     bool
		wantAuto    bool
		wantErr     bool
	}{
		{"HybridDev", "hybrid", "development", false, true, true, false},
		{"HybridProd", "hybrid", "production", false, true, false, false},
		{"HybridStaging", "hybrid", "staging", false, true, false, false},
		{"DefaultIsHybrid", "", "development", false, true, true, false},
		{"SQLOnly", "sql", "production", false, true, false, false},
		{"AutoDev", "auto", "development", false, false, true, false},
		{"AutoProdBlocked", "auto", "production", false, false, false, true},
		{"AutoProdAllowed", "auto", "production", true, false, true, false},
		{"UnknownMode", "yolo", "development", false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				DBSchemaMode:                  tt.mode,
				Env:                           tt.env,
				DBAutoMigrateAllowDestructive: tt.destructive,
			}
			runSQL, runAuto, err := schemaPolicy(cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestIsProdLikeEnv(t *testing.T) {
	assert.True(t, isProdLikeEnv("production"))
	assert.True(t, isProdLikeEnv("prod"))
	assert.True(t, isProdLikeEnv("Staging"))
	assert.True(t, isProdLikeEnv(" stage "))
	assert.False(t, isProdLikeEnv("development"))
	assert.False(t, isProdLikeEnv("test"))
	assert.False(t, isProdLikeEnv(""))
}

func TestGetSchemaStatus_AutoMode(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := &config.Config{DBSchemaMode: "auto", Env: "development"}
	status, err := GetSchemaStatus(context.Background(), db, cfg)
	require.NoError(t, err)

	assert.Equal(t, SchemaModeAuto, status.Mode)
	assert.False(t, status.WillRunSQL)
	assert.True(t, status.WillRunAutoMigrate)
	assert.Empty(t, status.AppliedVersions)
}

func TestRegisteredMigrations(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms)

	// Versions are sorted and every migration has both scripts.
	last := 0
	for _, m := range ms {
		assert.Greater(t, m.Version, last)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
		last = m.Version
	}

	first := GetMigrationByVersion(1)
	require.NotNil(t, first)
	assert.Equal(t, "000001_init", first.String())

	assert.Nil(t, GetMigrationByVersion(999999))
}

func TestValidateAppliedVersions(t *testing.T) {
	registered := []Migration{{Version: 1, Name: "init"}}

	assert.NoError(t, validateAppliedVersions(nil, registered))
	assert.NoError(t, validateAppliedVersions([]int{1}, registered))

	err := validateAppliedVersions([]int{1, 7}, registered)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000007")
}
