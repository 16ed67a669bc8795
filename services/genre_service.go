package services

import (
	"context"
	"fmt"
	"strings"

	"moviecatalogapi/config"
	"moviecatalogapi/models"
	"moviecatalogapi/pkg/logger"
	"moviecatalogapi/repository"
	"moviecatalogapi/services/dto"

	"gorm.io/gorm"
)

// GenreService provides business logic for the genre catalog.
type GenreService interface {
	List(ctx context.Context) ([]dto.GenreResponse, error)
	Item(ctx context.Context, id uint) (*dto.GenreResponse, error)
	Edit(ctx context.Context, id uint) (*dto.GenreRequest, error)
	Create(ctx context.Context, request *dto.GenreRequest) (*dto.CommandResult, error)
	Update(ctx context.Context, request *dto.GenreRequest) (*dto.CommandResult, error)
	Delete(ctx context.Context, id uint) (*dto.CommandResult, error)
}

type genreService struct {
	baseRepo       repository.BaseRepository
	genreRepo      *repository.EntityRepository[models.Genre, *models.Genre]
	movieGenreRepo *repository.EntityRepository[models.MovieGenre, *models.MovieGenre]
}

// NewGenreService creates a genre service bound to the global database handle.
func NewGenreService() GenreService {
	return NewGenreServiceWithDB(config.DB)
}

// NewGenreServiceWithDB creates a genre service bound to the given database handle.
func NewGenreServiceWithDB(db *gorm.DB) GenreService {
	return &genreService{
		baseRepo: repository.NewBaseRepositoryWithDB(db),
		genreRepo: repository.NewEntityRepository[models.Genre](db, repository.QueryConfig{
			Orders: []string{"name asc"},
		}),
		movieGenreRepo: repository.NewEntityRepository[models.MovieGenre](db, repository.QueryConfig{}),
	}
}

func (s *genreService) List(ctx context.Context) ([]dto.GenreResponse, error) {
	entities, err := s.genreRepo.GetAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	responses := make([]dto.GenreResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, dto.NewGenreResponse(&entities[i]))
	}
	return responses, nil
}

func (s *genreService) Item(ctx context.Context, id uint) (*dto.GenreResponse, error) {
	entity, err := s.genreRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}

	response := dto.NewGenreResponse(entity)
	return &response, nil
}

func (s *genreService) Edit(ctx context.Context, id uint) (*dto.GenreRequest, error) {
	entity, err := s.genreRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}
	return dto.NewGenreEditRequest(entity), nil
}

func (s *genreService) Create(ctx context.Context, request *dto.GenreRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.genreRepo.Exists(tx, "BINARY name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if exists {
		return dto.Failure("Genre with the same name already exists!"), nil
	}

	entity := &models.Genre{
		Name: name,
	}
	if err := s.genreRepo.Create(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Created genre: id=%d, name=%s", entity.ID, entity.Name)
	return dto.Success("Genre created successfully.", entity.ID), nil
}

func (s *genreService) Update(ctx context.Context, request *dto.GenreRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.genreRepo.Exists(tx, "id <> ? AND BINARY name = ?", request.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if exists {
		return dto.Failure("Genre with the same name already exists!"), nil
	}

	entity, err := s.genreRepo.GetByID(tx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %d: %w", request.ID, err)
	}
	if entity == nil {
		return dto.Failure("Genre not found!"), nil
	}

	entity.Name = name
	if err := s.genreRepo.Update(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to update genre %d: %w", entity.ID, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Updated genre: id=%d, name=%s", entity.ID, entity.Name)
	return dto.Success("Genre updated successfully.", entity.ID), nil
}

func (s *genreService) Delete(ctx context.Context, id uint) (*dto.CommandResult, error) {
	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	entity, err := s.genreRepo.GetByID(tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %d: %w", id, err)
	}
	if entity == nil {
		return dto.Failure("Genre not found!"), nil
	}

	// Movie links ride along with the genre.
	if err := s.movieGenreRepo.DeleteWhere(tx, "genre_id = ?", id); err != nil {
		return nil, fmt.Errorf("failed to delete movie links for genre %d: %w", id, err)
	}
	if err := s.genreRepo.Delete(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to delete genre %d: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Deleted genre: id=%d", id)
	return dto.Success("Genre deleted successfully.", entity.ID), nil
}
