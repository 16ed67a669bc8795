package bootstrap

import (
	"fmt"

	"moviecatalogapi/config"
	"moviecatalogapi/models"
	"moviecatalogapi/pkg/logger"
)

// LoadData migrates the catalog schema and logs a census of every table so a
// misconfigured database shows up at startup rather than on the first request.
func LoadData() error {
	logger.Infof("Starting catalog schema migration...")

	if err := config.DB.AutoMigrate(models.All()...); err != nil {
		logger.Errorf("Failed to migrate catalog schema: %v", err)
		return fmt.Errorf("failed to migrate catalog schema: %v", err)
	}

	tables := map[string]interface{}{
		"directors":    &models.Director{},
		"genres":       &models.Genre{},
		"groups":       &models.Group{},
		"roles":        &models.Role{},
		"movies":       &models.Movie{},
		"users":        &models.User{},
		"movie_genres": &models.MovieGenre{},
		"user_roles":   &models.UserRole{},
	}
	for name, model := range tables {
		var count int64
		if err := config.DB.Model(model).Count(&count).Error; err != nil {
			logger.Errorf("Failed to count %s: %v", name, err)
			return fmt.Errorf("failed to count %s: %v", name, err)
		}
		logger.Infof("Loaded table %s: %d records", name, count)
	}

	logger.Infof("Catalog schema migration completed successfully")
	return nil
}
