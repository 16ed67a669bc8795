package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviecatalogapi/config"
	"moviecatalogapi/models"
	"moviecatalogapi/pkg/logger"
	"moviecatalogapi/repository"
	"moviecatalogapi/services/dto"

	"gorm.io/gorm"
)

// UserService provides business logic for the user catalog. The registration
// timestamp is stamped at create time, a blank password on update keeps the
// stored credential, and delete always cascades the user's role join rows.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Item(ctx context.Context, id uint) (*dto.UserResponse, error)
	Edit(ctx context.Context, id uint) (*dto.UserRequest, error)
	Create(ctx context.Context, request *dto.UserRequest) (*dto.CommandResult, error)
	Update(ctx context.Context, request *dto.UserRequest) (*dto.CommandResult, error)
	Delete(ctx context.Context, id uint) (*dto.CommandResult, error)
}

type userService struct {
	baseRepo     repository.BaseRepository
	userRepo     *repository.EntityRepository[models.User, *models.User]
	userRoleRepo *repository.EntityRepository[models.UserRole, *models.UserRole]
}

// NewUserService creates a user service bound to the global database handle.
func NewUserService() UserService {
	return NewUserServiceWithDB(config.DB)
}

// NewUserServiceWithDB creates a user service bound to the given database handle.
func NewUserServiceWithDB(db *gorm.DB) UserService {
	return &userService{
		baseRepo: repository.NewBaseRepositoryWithDB(db),
		userRepo: repository.NewEntityRepository[models.User](db, repository.QueryConfig{
			Preloads: []string{"Group"},
		}),
		userRoleRepo: repository.NewEntityRepository[models.UserRole](db, repository.QueryConfig{}),
	}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	entities, err := s.userRepo.GetAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, dto.NewUserResponse(&entities[i]))
	}
	return responses, nil
}

func (s *userService) Item(ctx context.Context, id uint) (*dto.UserResponse, error) {
	entity, err := s.userRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}

	response := dto.NewUserResponse(entity)
	return &response, nil
}

func (s *userService) Edit(ctx context.Context, id uint) (*dto.UserRequest, error) {
	entity, err := s.userRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}
	return dto.NewUserEditRequest(entity), nil
}

func (s *userService) Create(ctx context.Context, request *dto.UserRequest) (*dto.CommandResult, error) {
	userName := strings.TrimSpace(request.UserName)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.userRepo.Exists(tx, "BINARY user_name = ?", userName)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return dto.Failure("User with the same username already exists!"), nil
	}

	entity := &models.User{
		UserName: userName,
		// Stored as received. Hashing is a separate hardening task.
		Password:         request.Password,
		FirstName:        strings.TrimSpace(request.FirstName),
		LastName:         strings.TrimSpace(request.LastName),
		Gender:           request.Gender,
		BirthDate:        request.BirthDate,
		Score:            request.Score,
		IsActive:         request.IsActive,
		Address:          strings.TrimSpace(request.Address),
		CountryID:        request.CountryID,
		CityID:           request.CityID,
		GroupID:          request.GroupID,
		RegistrationDate: time.Now().UTC(),
	}
	if err := s.userRepo.Create(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Created user: id=%d, username=%s", entity.ID, entity.UserName)
	return dto.Success("User created successfully.", entity.ID), nil
}

func (s *userService) Update(ctx context.Context, request *dto.UserRequest) (*dto.CommandResult, error) {
	userName := strings.TrimSpace(request.UserName)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.userRepo.Exists(tx, "id <> ? AND BINARY user_name = ?", request.ID, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return dto.Failure("User with the same username already exists!"), nil
	}

	entity, err := s.userRepo.GetByID(tx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", request.ID, err)
	}
	if entity == nil {
		return dto.Failure("User not found!"), nil
	}

	entity.UserName = userName
	if strings.TrimSpace(request.Password) != "" {
		entity.Password = request.Password
	}
	entity.FirstName = strings.TrimSpace(request.FirstName)
	entity.LastName = strings.TrimSpace(request.LastName)
	entity.Gender = request.Gender
	entity.BirthDate = request.BirthDate
	entity.Score = request.Score
	entity.IsActive = request.IsActive
	entity.Address = strings.TrimSpace(request.Address)
	entity.CountryID = request.CountryID
	entity.CityID = request.CityID
	entity.GroupID = request.GroupID

	if err := s.userRepo.Update(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", entity.ID, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Updated user: id=%d, username=%s", entity.ID, entity.UserName)
	return dto.Success("User updated successfully.", entity.ID), nil
}

func (s *userService) Delete(ctx context.Context, id uint) (*dto.CommandResult, error) {
	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	entity, err := s.userRepo.GetByID(tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	if entity == nil {
		return dto.Failure("User not found!"), nil
	}

	// Unlike directors and groups, users never refuse deletion: the role join
	// rows go first, then the user, in one unit of work.
	if err := s.userRoleRepo.DeleteWhere(tx, "user_id = ?", id); err != nil {
		return nil, fmt.Errorf("failed to delete role links of user %d: %w", id, err)
	}

	if err := s.userRepo.Delete(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Deleted user: id=%d", id)
	return dto.Success("User deleted successfully.", entity.ID), nil
}
