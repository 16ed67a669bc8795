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

// RoleService provides business logic for the role catalog.
type RoleService interface {
	List(ctx context.Context) ([]dto.RoleResponse, error)
	Item(ctx context.Context, id uint) (*dto.RoleResponse, error)
	Edit(ctx context.Context, id uint) (*dto.RoleRequest, error)
	Create(ctx context.Context, request *dto.RoleRequest) (*dto.CommandResult, error)
	Update(ctx context.Context, request *dto.RoleRequest) (*dto.CommandResult, error)
	Delete(ctx context.Context, id uint) (*dto.CommandResult, error)
}

type roleService struct {
	baseRepo     repository.BaseRepository
	roleRepo     *repository.EntityRepository[models.Role, *models.Role]
	userRoleRepo *repository.EntityRepository[models.UserRole, *models.UserRole]
}

// NewRoleService creates a role service bound to the global database handle.
func NewRoleService() RoleService {
	return NewRoleServiceWithDB(config.DB)
}

// NewRoleServiceWithDB creates a role service bound to the given database handle.
func NewRoleServiceWithDB(db *gorm.DB) RoleService {
	return &roleService{
		baseRepo: repository.NewBaseRepositoryWithDB(db),
		roleRepo: repository.NewEntityRepository[models.Role](db, repository.QueryConfig{
			Orders: []string{"name asc"},
		}),
		userRoleRepo: repository.NewEntityRepository[models.UserRole](db, repository.QueryConfig{}),
	}
}

func (s *roleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	entities, err := s.roleRepo.GetAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]dto.RoleResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, dto.NewRoleResponse(&entities[i]))
	}
	return responses, nil
}

func (s *roleService) Item(ctx context.Context, id uint) (*dto.RoleResponse, error) {
	entity, err := s.roleRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get role %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}

	response := dto.NewRoleResponse(entity)
	return &response, nil
}

func (s *roleService) Edit(ctx context.Context, id uint) (*dto.RoleRequest, error) {
	entity, err := s.roleRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get role %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}
	return dto.NewRoleEditRequest(entity), nil
}

func (s *roleService) Create(ctx context.Context, request *dto.RoleRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.roleRepo.Exists(tx, "BINARY name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}
	if exists {
		return dto.Failure("Role with the same name already exists!"), nil
	}

	entity := &models.Role{
		Name: name,
	}
	if err := s.roleRepo.Create(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Created role: id=%d, name=%s", entity.ID, entity.Name)
	return dto.Success("Role created successfully.", entity.ID), nil
}

func (s *roleService) Update(ctx context.Context, request *dto.RoleRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.roleRepo.Exists(tx, "id <> ? AND BINARY name = ?", request.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}
	if exists {
		return dto.Failure("Role with the same name already exists!"), nil
	}

	entity, err := s.roleRepo.GetByID(tx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role %d: %w", request.ID, err)
	}
	if entity == nil {
		return dto.Failure("Role not found!"), nil
	}

	entity.Name = name
	if err := s.roleRepo.Update(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to update role %d: %w", entity.ID, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Updated role: id=%d, name=%s", entity.ID, entity.Name)
	return dto.Success("Role updated successfully.", entity.ID), nil
}

func (s *roleService) Delete(ctx context.Context, id uint) (*dto.CommandResult, error) {
	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	entity, err := s.roleRepo.GetByID(tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get role %d: %w", id, err)
	}
	if entity == nil {
		return dto.Failure("Role not found!"), nil
	}

	// User links ride along with the role.
	if err := s.userRoleRepo.DeleteWhere(tx, "role_id = ?", id); err != nil {
		return nil, fmt.Errorf("failed to delete user links for role %d: %w", id, err)
	}
	if err := s.roleRepo.Delete(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to delete role %d: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Deleted role: id=%d", id)
	return dto.Success("Role deleted successfully.", entity.ID), nil
}
