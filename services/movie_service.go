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
	"moviecatalogapi/utils"

	"gorm.io/gorm"
)

// MovieService provides business logic for the movie catalog, including the
// synchronization of the movie's genre join rows. A movie owns its join rows:
// they are rewritten on update and removed unconditionally on delete, in the
// same unit of work as the movie itself.
type MovieService interface {
	List(ctx context.Context) ([]dto.MovieResponse, error)
	Item(ctx context.Context, id uint) (*dto.MovieResponse, error)
	Edit(ctx context.Context, id uint) (*dto.MovieRequest, error)
	Create(ctx context.Context, request *dto.MovieRequest) (*dto.CommandResult, error)
	Update(ctx context.Context, request *dto.MovieRequest) (*dto.CommandResult, error)
	Delete(ctx context.Context, id uint) (*dto.CommandResult, error)
}

type movieService struct {
	baseRepo       repository.BaseRepository
	movieRepo      *repository.EntityRepository[models.Movie, *models.Movie]
	movieGenreRepo *repository.EntityRepository[models.MovieGenre, *models.MovieGenre]
}

// NewMovieService creates a movie service bound to the global database handle.
func NewMovieService() MovieService {
	return NewMovieServiceWithDB(config.DB)
}

// NewMovieServiceWithDB creates a movie service bound to the given database handle.
func NewMovieServiceWithDB(db *gorm.DB) MovieService {
	return &movieService{
		baseRepo: repository.NewBaseRepositoryWithDB(db),
		movieRepo: repository.NewEntityRepository[models.Movie](db, repository.QueryConfig{
			Preloads: []string{"Director", "MovieGenres.Genre"},
		}),
		movieGenreRepo: repository.NewEntityRepository[models.MovieGenre](db, repository.QueryConfig{}),
	}
}

func (s *movieService) List(ctx context.Context) ([]dto.MovieResponse, error) {
	entities, err := s.movieRepo.GetAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	responses := make([]dto.MovieResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, dto.NewMovieResponse(&entities[i]))
	}
	return responses, nil
}

func (s *movieService) Item(ctx context.Context, id uint) (*dto.MovieResponse, error) {
	entity, err := s.movieRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}

	response := dto.NewMovieResponse(entity)
	return &response, nil
}

func (s *movieService) Edit(ctx context.Context, id uint) (*dto.MovieRequest, error) {
	entity, err := s.movieRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	if entity == nil {
		return nil, nil
	}
	return dto.NewMovieEditRequest(entity), nil
}

func (s *movieService) Create(ctx context.Context, request *dto.MovieRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.movieRepo.Exists(tx, "BINARY name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("failed to check movie name: %w", err)
	}
	if exists {
		return dto.Failure("Movie with the same name already exists!"), nil
	}

	entity := &models.Movie{
		Name:         name,
		ReleaseDate:  request.ReleaseDate,
		TotalRevenue: request.TotalRevenue,
		DirectorID:   request.DirectorID,
	}

	// The insert's generated identifier is visible inside the transaction, so
	// the join rows reference it before anything is committed.
	if err := s.movieRepo.Create(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	genreIDs := requestedGenreIDs(request.GenreIds)
	for _, genreID := range genreIDs {
		movieGenre := &models.MovieGenre{
			MovieID: entity.ID,
			GenreID: genreID,
		}
		if err := s.movieGenreRepo.Create(tx, movieGenre); err != nil {
			return nil, fmt.Errorf("failed to link genre %d to movie %d: %w", genreID, entity.ID, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Created movie: id=%d, name=%s, genres=%d", entity.ID, entity.Name, len(genreIDs))
	return dto.Success("Movie created successfully.", entity.ID), nil
}

func (s *movieService) Update(ctx context.Context, request *dto.MovieRequest) (*dto.CommandResult, error) {
	name := strings.TrimSpace(request.Name)

	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	exists, err := s.movieRepo.Exists(tx, "id <> ? AND BINARY name = ?", request.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check movie name: %w", err)
	}
	if exists {
		return dto.Failure("Movie with the same name already exists!"), nil
	}

	entity, err := s.movieRepo.GetByID(tx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", request.ID, err)
	}
	if entity == nil {
		return dto.Failure("Movie not found!"), nil
	}

	entity.Name = name
	entity.ReleaseDate = request.ReleaseDate
	entity.TotalRevenue = request.TotalRevenue
	entity.DirectorID = request.DirectorID

	if err := s.syncGenres(tx, entity, request.GenreIds); err != nil {
		return nil, err
	}

	if err := s.movieRepo.Update(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to update movie %d: %w", entity.ID, err)
	}

	// All staged join-row removals and additions land with this commit, so the
	// post-state genre set equals exactly the requested set.
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Updated movie: id=%d, name=%s", entity.ID, entity.Name)
	return dto.Success("Movie updated successfully.", entity.ID), nil
}

func (s *movieService) Delete(ctx context.Context, id uint) (*dto.CommandResult, error) {
	tx := s.baseRepo.Begin()
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	entity, err := s.movieRepo.GetByID(tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	if entity == nil {
		return dto.Failure("Movie not found!"), nil
	}

	// Movies do not guard genres: the join rows go unconditionally, then the
	// movie itself. Genres are never deleted from here.
	if err := s.movieGenreRepo.DeleteWhere(tx, "movie_id = ?", id); err != nil {
		return nil, fmt.Errorf("failed to delete genre links of movie %d: %w", id, err)
	}

	if err := s.movieRepo.Delete(tx, entity); err != nil {
		return nil, fmt.Errorf("failed to delete movie %d: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Deleted movie: id=%d", id)
	return dto.Success("Movie deleted successfully.", entity.ID), nil
}

// syncGenres stages the symmetric difference between the movie's current
// genre set and the requested one: join rows only in the current set are
// removed, ones only in the requested set are inserted, and the overlap is
// left untouched.
func (s *movieService) syncGenres(tx *gorm.DB, entity *models.Movie, requestedIDs []int) error {
	current := make(map[uint]bool, len(entity.MovieGenres))
	for _, movieGenre := range entity.MovieGenres {
		current[movieGenre.GenreID] = true
	}

	requested := make(map[uint]bool)
	for _, genreID := range requestedGenreIDs(requestedIDs) {
		requested[genreID] = true
	}

	var toRemove []uint
	for genreID := range current {
		if !requested[genreID] {
			toRemove = append(toRemove, genreID)
		}
	}

	var toAdd []uint
	for _, genreID := range requestedGenreIDs(requestedIDs) {
		if !current[genreID] {
			toAdd = append(toAdd, genreID)
		}
	}

	if len(toRemove) > 0 {
		if err := s.movieGenreRepo.DeleteWhere(tx, "movie_id = ? AND genre_id IN ?", entity.ID, toRemove); err != nil {
			return fmt.Errorf("failed to unlink genres from movie %d: %w", entity.ID, err)
		}
	}

	for _, genreID := range toAdd {
		movieGenre := &models.MovieGenre{
			MovieID: entity.ID,
			GenreID: genreID,
		}
		if err := s.movieGenreRepo.Create(tx, movieGenre); err != nil {
			return fmt.Errorf("failed to link genre %d to movie %d: %w", genreID, entity.ID, err)
		}
	}

	return nil
}

// requestedGenreIDs drops non-positive identifiers and duplicates from an
// inbound genre id list, preserving order.
func requestedGenreIDs(ids []int) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, raw := range ids {
		genreID := utils.IntToUintOrZero(raw)
		if genreID == 0 || seen[genreID] {
			continue
		}
		seen[genreID] = true
		result = append(result, genreID)
	}
	return result
}
