package services

import (
	"testing"

	"moviecatalogapi/testutil"

	"gorm.io/gorm"
)

// newTestDB spins up the in-process MySQL server with the catalog schema
// migrated. Each test gets its own server and empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.NewTestDB(t)
}

// countRows counts rows of the given model matching the condition.
func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
