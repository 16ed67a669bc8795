package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"moviecatalogapi/models"
	"moviecatalogapi/services/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedGenres creates genres with the given names and returns their ids in order.
func seedGenres(t *testing.T, srv GenreService, names ...string) []uint {
	t.Helper()
	ctx := context.Background()

	ids := make([]uint, 0, len(names))
	for _, name := range names {
		result, err := srv.Create(ctx, &dto.GenreRequest{Name: name})
		require.NoError(t, err)
		require.True(t, result.IsSuccessful)
		ids = append(ids, result.ID)
	}
	return ids
}

func linkedGenreIDs(t *testing.T, srv MovieService, movieID uint) []uint {
	t.Helper()

	item, err := srv.Item(context.Background(), movieID)
	require.NoError(t, err)
	require.NotNil(t, item)

	ids := append([]uint(nil), item.GenreIds...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestMovieCreate_LinksRequestedGenres(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	genreSrv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	genres := seedGenres(t, genreSrv, "Drama", "Comedy")

	release := time.Date(2019, 5, 17, 0, 0, 0, 0, time.UTC)
	result, err := srv.Create(ctx, &dto.MovieRequest{
		Name:         " Quiet Rooms ",
		ReleaseDate:  &release,
		TotalRevenue: decimal.NewFromFloat(1250000.50),
		GenreIds:     []int{int(genres[0]), int(genres[1])},
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "Movie created successfully.", result.Message)

	item, err := srv.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Quiet Rooms", item.Name)
	assert.Equal(t, "05/17/2019", item.ReleaseDateF)
	assert.Contains(t, item.GenreNames, "Drama")
	assert.Contains(t, item.GenreNames, "Comedy")
	assert.ElementsMatch(t, genres, item.GenreIds)
}

func TestMovieCreate_DropsInvalidGenreIds(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	genreSrv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	genres := seedGenres(t, genreSrv, "Drama")

	// Non-positive ids and duplicates never reach the join table.
	result, err := srv.Create(ctx, &dto.MovieRequest{
		Name:     "Quiet Rooms",
		GenreIds: []int{0, -3, int(genres[0]), int(genres[0])},
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)

	assert.EqualValues(t, 1, countRows(t, db, &models.MovieGenre{}, "movie_id = ?", result.ID))
}

func TestMovieCreate_DuplicateNameRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.MovieRequest{Name: "Quiet Rooms"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	second, err := srv.Create(ctx, &dto.MovieRequest{Name: " Quiet Rooms "})
	require.NoError(t, err)
	assert.False(t, second.IsSuccessful)
	assert.Equal(t, "Movie with the same name already exists!", second.Message)
}

func TestMovieUpdate_GenreSyncIsSetExact(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	genreSrv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	genres := seedGenres(t, genreSrv, "Drama", "Comedy", "Action", "Horror")

	created, err := srv.Create(ctx, &dto.MovieRequest{
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genres[0]), int(genres[1]), int(genres[2])},
	})
	require.NoError(t, err)
	require.True(t, created.IsSuccessful)

	// {0,1,2} -> {1,2,3}: genre 0 unlinked, genre 3 linked, overlap untouched.
	result, err := srv.Update(ctx, &dto.MovieRequest{
		ID:       created.ID,
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genres[1]), int(genres[2]), int(genres[3])},
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)

	want := []uint{genres[1], genres[2], genres[3]}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	assert.Equal(t, want, linkedGenreIDs(t, srv, created.ID))
	assert.EqualValues(t, 3, countRows(t, db, &models.MovieGenre{}, "movie_id = ?", created.ID))
}

func TestMovieUpdate_GenreSyncIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	genreSrv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	genres := seedGenres(t, genreSrv, "Drama", "Comedy")

	created, err := srv.Create(ctx, &dto.MovieRequest{
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genres[0]), int(genres[1])},
	})
	require.NoError(t, err)

	request := &dto.MovieRequest{
		ID:       created.ID,
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genres[0]), int(genres[1])},
	}
	for i := 0; i < 2; i++ {
		result, err := srv.Update(ctx, request)
		require.NoError(t, err)
		require.True(t, result.IsSuccessful)
	}

	assert.EqualValues(t, 2, countRows(t, db, &models.MovieGenre{}, "movie_id = ?", created.ID))
}

func TestMovieUpdate_EmptySetUnlinksAll(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	genreSrv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	genres := seedGenres(t, genreSrv, "Drama", "Comedy")

	created, err := srv.Create(ctx, &dto.MovieRequest{
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genres[0]), int(genres[1])},
	})
	require.NoError(t, err)

	result, err := srv.Update(ctx, &dto.MovieRequest{
		ID:   created.ID,
		Name: "Quiet Rooms",
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)

	assert.EqualValues(t, 0, countRows(t, db, &models.MovieGenre{}, "movie_id = ?", created.ID))
}

func TestMovieUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)

	result, err := srv.Update(context.Background(), &dto.MovieRequest{ID: 404, Name: "Ghost Reel"})
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Movie not found!", result.Message)
}

func TestMovieDelete_RemovesJoinRowsButNotGenres(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	genreSrv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	genres := seedGenres(t, genreSrv, "Drama", "Comedy")

	created, err := srv.Create(ctx, &dto.MovieRequest{
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genres[0]), int(genres[1])},
	})
	require.NoError(t, err)

	result, err := srv.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)
	assert.Equal(t, "Movie deleted successfully.", result.Message)

	assert.EqualValues(t, 0, countRows(t, db, &models.MovieGenre{}, "movie_id = ?", created.ID))

	// The genres themselves are never cascaded from a movie.
	list, err := genreSrv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMovieItem_ProjectsDirectorAndRevenue(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	directorSrv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	director, err := directorSrv.Create(ctx, &dto.DirectorRequest{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	directorID := director.ID
	created, err := srv.Create(ctx, &dto.MovieRequest{
		Name:         "Quiet Rooms",
		TotalRevenue: decimal.NewFromInt(2500000),
		DirectorID:   &directorID,
	})
	require.NoError(t, err)

	item, err := srv.Item(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "John Doe", item.DirectorName)
	assert.Equal(t, "$2,500,000.00", item.TotalRevenueF)
	assert.Empty(t, item.ReleaseDateF)
}

func TestMovieEdit_ReturnsCurrentGenreIds(t *testing.T) {
	db := newTestDB(t)
	srv := NewMovieServiceWithDB(db)
	genreSrv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	genres := seedGenres(t, genreSrv, "Drama", "Comedy")

	created, err := srv.Create(ctx, &dto.MovieRequest{
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genres[0]), int(genres[1])},
	})
	require.NoError(t, err)

	edit, err := srv.Edit(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, edit)
	assert.ElementsMatch(t, []int{int(genres[0]), int(genres[1])}, edit.GenreIds)
}
