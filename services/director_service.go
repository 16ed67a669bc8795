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

// DirectorService provides business logic for the director catalog.
// Deletion is refused while the director still has relational movies.
type DirectorService interface {
	List(ctx context.Context) ([]dto.DirectorResponse, error)
	Item(ctx context.Context, id uint) (*dto.DirectorResponse, error)
	Edit(ctx context.Context, id uint) (*dto.DirectorRequest, error)
	Create(ctx context.Context, request *dto.DirectorRequest) (*dto.CommandResult, error)
	Update(ctx context.Context, request *dto.DirectorRequest) (*dto.CommandResult, error)
	Delete(ctx context.Context, id uint) (*dto.CommandResult, error)
}

type directorService struct {
	baseRepo     repository.BaseRepository
	directorRepo *repository.EntityRepository[models.Director, *models.Director]
}

// NewDirectorService creates a director service bound to the global database handle.
func NewDirectorService() DirectorService {
	return NewDirectorServiceWithDB(config.DB)
}

// NewDirectorServiceWithDB creates a director service bound to the given database handle.
func NewDirectorServiceWithDB(db *gorm.DB) DirectorService {
	return &directorService{
		baseRepo: repository.NewBaseRepositoryWithDB(db),
		directorRepo: repository.NewEntityRepository[models.Director](db, repository.QueryConfig{
			Orders:   []string{"last_name asc", "first_name asc"},
			Preloads: []string{"Movies"},
		}),
	}
}

func (s *directorService) List(ctx context.Context) ([]dto.DirectorResponse, error) {
	entities, err := s.directorRepo.GetAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}

	responses := make([]dto.DirectorResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, dto.NewDirectorResponse(&entities[i]))
	}
	return responses, nil
}

func (s *directorService) Item(ctx context.Context, id uint) (*dto.DirectorResponse, error) {
	entity, err := s.directorRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get director %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}

	response := dto.NewDirectorResponse(entity)
	return &response, nil
}

func (s *directorService) Edit(ctx context.Context, id uint) (*dto.DirectorRequest, error) {
	entity, err := s.directorRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get director %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}
	return dto.NewDirectorEditRequest(entity), nil
}

func (s *directorService) Create(ctx context.Context, request *dto.DirectorRequest) (*dto.CommandResult, error) {
	firstName := strings.TrimSpace(request.FirstName)
	lastName := strings.TrimSpace(request.LastName)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	// BINARY keeps the name comparison case-sensitive regardless of collation.
	exists, err := s.directorRepo.Exists(tx, "BINARY first_name = ? AND BINARY last_name = ?", firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to check director name: %w", err)
	}
	if exists {
		return dto.Failure("Director with the same name already exists!"), nil
	}

	entity := &models.Director{
		FirstName: firstName,
		LastName:  lastName,
		IsRetired: request.IsRetired,
	}
	if err := s.directorRepo.Create(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to create director: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Created director: id=%d, name=%s %s", entity.ID, entity.FirstName, entity.LastName)
	return dto.Success("Director created successfully.", entity.ID), nil
}

func (s *directorService) Update(ctx context.Context, request *dto.DirectorRequest) (*dto.CommandResult, error) {
	firstName := strings.TrimSpace(request.FirstName)
	lastName := strings.TrimSpace(request.LastName)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.directorRepo.Exists(tx, "id <> ? AND BINARY first_name = ? AND BINARY last_name = ?",
		request.ID, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to check director name: %w", err)
	}
	if exists {
		return dto.Failure("Director with the same name already exists!"), nil
	}

	entity, err := s.directorRepo.GetByID(tx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get director %d: %w", request.ID, err)
	}
	if entity == nil {
		return dto.Failure("Director not found!"), nil
	}

	entity.FirstName = firstName
	entity.LastName = lastName
	entity.IsRetired = request.IsRetired
	if err := s.directorRepo.Update(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to update director %d: %w", entity.ID, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Updated director: id=%d, name=%s %s", entity.ID, entity.FirstName, entity.LastName)
	return dto.Success("Director updated successfully.", entity.ID), nil
}

func (s *directorService) Delete(ctx context.Context, id uint) (*dto.CommandResult, error) {
	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	entity, err := s.directorRepo.GetByID(tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get director %d: %w", id, err)
	}
	if entity == nil {
		return dto.Failure("Director not found!"), nil
	}

	if len(entity.Movies) > 0 {
		return dto.Failure("Director can't be deleted because it has relational movies!"), nil
	}

	if err := s.directorRepo.Delete(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to delete director %d: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Deleted director: id=%d", id)
	return dto.Success("Director deleted successfully.", entity.ID), nil
}
