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

// GroupService provides business logic for the user group catalog.
// Deletion is refused while the group still has relational users.
type GroupService interface {
	List(ctx context.Context) ([]dto.GroupResponse, error)
	Item(ctx context.Context, id uint) (*dto.GroupResponse, error)
	Edit(ctx context.Context, id uint) (*dto.GroupRequest, error)
	Create(ctx context.Context, request *dto.GroupRequest) (*dto.CommandResult, error)
	Update(ctx context.Context, request *dto.GroupRequest) (*dto.CommandResult, error)
	Delete(ctx context.Context, id uint) (*dto.CommandResult, error)
}

type groupService struct {
	baseRepo  repository.BaseRepository
	groupRepo *repository.EntityRepository[models.Group, *models.Group]
}

// NewGroupService creates a group service bound to the global database handle.
func NewGroupService() GroupService {
	return NewGroupServiceWithDB(config.DB)
}

// NewGroupServiceWithDB creates a group service bound to the given database handle.
func NewGroupServiceWithDB(db *gorm.DB) GroupService {
	return &groupService{
		baseRepo: repository.NewBaseRepositoryWithDB(db),
		groupRepo: repository.NewEntityRepository[models.Group](db, repository.QueryConfig{
			Orders:   []string{"name asc"},
			Preloads: []string{"Users"},
		}),
	}
}

func (s *groupService) List(ctx context.Context) ([]dto.GroupResponse, error) {
	entities, err := s.groupRepo.GetAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	responses := make([]dto.GroupResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, dto.NewGroupResponse(&entities[i]))
	}
	return responses, nil
}

func (s *groupService) Item(ctx context.Context, id uint) (*dto.GroupResponse, error) {
	entity, err := s.groupRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}

	response := dto.NewGroupResponse(entity)
	return &response, nil
}

func (s *groupService) Edit(ctx context.Context, id uint) (*dto.GroupRequest, error) {
	entity, err := s.groupRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}
	return dto.NewGroupEditRequest(entity), nil
}

func (s *groupService) Create(ctx context.Context, request *dto.GroupRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)
	description := strings.TrimSpace(request.Description)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.groupRepo.Exists(tx, "BINARY name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}
	if exists {
		return dto.Failure("Group with the same name already exists!"), nil
	}

	entity := &models.Group{
		Name:        name,
		Description: description,
	}
	if err := s.groupRepo.Create(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Created group: id=%d, name=%s", entity.ID, entity.Name)
	return dto.Success("Group created successfully.", entity.ID), nil
}

func (s *groupService) Update(ctx context.Context, request *dto.GroupRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)
	description := strings.TrimSpace(request.Description)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.groupRepo.Exists(tx, "id <> ? AND BINARY name = ?", request.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}
	if exists {
		return dto.Failure("Group with the same name already exists!"), nil
	}

	entity, err := s.groupRepo.GetByID(tx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", request.ID, err)
	}
	if entity == nil {
		return dto.Failure("Group not found!"), nil
	}

	entity.Name = name
	entity.Description = description
	if err := s.groupRepo.Update(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to update group %d: %w", entity.ID, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Updated group: id=%d, name=%s", entity.ID, entity.Name)
	return dto.Success("Group updated successfully.", entity.ID), nil
}

func (s *groupService) Delete(ctx context.Context, id uint) (*dto.CommandResult, error) {
	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	entity, err := s.groupRepo.GetByID(tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", id, err)
	}
	if entity == nil {
		return dto.Failure("Group not found!"), nil
	}

	if len(entity.Users) > 0 {
		return dto.Failure("Group can't be deleted because it has relational users!"), nil
	}

	if err := s.groupRepo.Delete(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to delete group %d: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Deleted group: id=%d", id)
	return dto.Success("Group deleted successfully.", entity.ID), nil
}
