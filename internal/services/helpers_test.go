package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "taskflow.db") + "?_pragma=foreign_keys(1)"

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}))

	return database
}

// setCreatedAt pins a row's creation time so ordering assertions are
// deterministic.
func setCreatedAt(t *testing.T, database *gorm.DB, model interface{}, id uint, at time.Time) {
	t.Helper()

	err := database.Model(model).Where("id = ?", id).Update("created_at", at).Error
	require.NoError(t, err)
}
