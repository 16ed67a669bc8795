package services

import (
	"context"
	"testing"

	"moviecatalogapi/models"
	"moviecatalogapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreCreate_TrimsName(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	result, err := srv.Create(ctx, &dto.GenreRequest{Name: "  Drama "})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "Genre created successfully.", result.Message)

	item, err := srv.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Drama", item.Name)
}

func TestGenreCreate_DuplicateNameRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.GenreRequest{Name: "Drama"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	second, err := srv.Create(ctx, &dto.GenreRequest{Name: " Drama "})
	require.NoError(t, err)
	assert.False(t, second.IsSuccessful)
	assert.Equal(t, "Genre with the same name already exists!", second.Message)
}

func TestGenreCreate_UniquenessIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.GenreRequest{Name: "Drama"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	// Names collide only on an exact byte match, regardless of the store's
	// default collation.
	second, err := srv.Create(ctx, &dto.GenreRequest{Name: "drama"})
	require.NoError(t, err)
	assert.True(t, second.IsSuccessful)

	list, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGenreUpdate_UniquenessIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	drama, err := srv.Create(ctx, &dto.GenreRequest{Name: "Drama"})
	require.NoError(t, err)
	require.True(t, drama.IsSuccessful)
	comedy, err := srv.Create(ctx, &dto.GenreRequest{Name: "Comedy"})
	require.NoError(t, err)
	require.True(t, comedy.IsSuccessful)

	// A case-different variant of another genre's name is not a collision.
	result, err := srv.Update(ctx, &dto.GenreRequest{ID: comedy.ID, Name: "DRAMA"})
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)

	item, err := srv.Item(ctx, comedy.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "DRAMA", item.Name)
}

func TestGenreUpdate_ExcludesSelfFromUniqueness(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	drama, err := srv.Create(ctx, &dto.GenreRequest{Name: "Drama"})
	require.NoError(t, err)
	comedy, err := srv.Create(ctx, &dto.GenreRequest{Name: "Comedy"})
	require.NoError(t, err)

	// Renaming to a name another genre holds is refused.
	clash, err := srv.Update(ctx, &dto.GenreRequest{ID: comedy.ID, Name: "Drama"})
	require.NoError(t, err)
	assert.False(t, clash.IsSuccessful)
	assert.Equal(t, "Genre with the same name already exists!", clash.Message)

	// Re-submitting a genre's own name is not a collision.
	same, err := srv.Update(ctx, &dto.GenreRequest{ID: drama.ID, Name: "Drama"})
	require.NoError(t, err)
	assert.True(t, same.IsSuccessful)
}

func TestGenreUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)

	result, err := srv.Update(context.Background(), &dto.GenreRequest{ID: 77, Name: "Noir"})
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Genre not found!", result.Message)
}

func TestGenreList_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)
	ctx := context.Background()

	for _, name := range []string{"Western", "Action", "Drama"} {
		result, err := srv.Create(ctx, &dto.GenreRequest{Name: name})
		require.NoError(t, err)
		require.True(t, result.IsSuccessful)
	}

	list, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Action", list[0].Name)
	assert.Equal(t, "Drama", list[1].Name)
	assert.Equal(t, "Western", list[2].Name)
}

func TestGenreDelete_RemovesMovieLinks(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)
	movieSrv := NewMovieServiceWithDB(db)
	ctx := context.Background()

	genre, err := srv.Create(ctx, &dto.GenreRequest{Name: "Drama"})
	require.NoError(t, err)

	movie, err := movieSrv.Create(ctx, &dto.MovieRequest{
		Name:     "Quiet Rooms",
		GenreIds: []int{int(genre.ID)},
	})
	require.NoError(t, err)
	require.True(t, movie.IsSuccessful)
	require.EqualValues(t, 1, countRows(t, db, &models.MovieGenre{}, "genre_id = ?", genre.ID))

	result, err := srv.Delete(ctx, genre.ID)
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)
	assert.Equal(t, "Genre deleted successfully.", result.Message)

	assert.EqualValues(t, 0, countRows(t, db, &models.MovieGenre{}, "genre_id = ?", genre.ID))

	// The movie itself survives its genre.
	item, err := movieSrv.Item(ctx, movie.ID)
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestGenreDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewGenreServiceWithDB(db)

	result, err := srv.Delete(context.Background(), 123)
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Genre not found!", result.Message)
}
