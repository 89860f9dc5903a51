package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courses/internal/config"
)

func TestPoolConfig(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Database.Host = "db.internal"
	cfg.Database.DBName = "catalog"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "30m"

	pc, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, "catalog", pc.ConnConfig.Database)
	assert.EqualValues(t, 8, pc.MaxConns)
	assert.EqualValues(t, 2, pc.MinConns)
	assert.Equal(t, 30*time.Minute, pc.MaxConnLifetime)
	assert.NotNil(t, pc.BeforeAcquire)
}

func TestPoolConfig_BadLifetime(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Database.ConnMaxLifetime = "soon"

	_, err = PoolConfig(cfg)
	assert.Error(t, err)
}
