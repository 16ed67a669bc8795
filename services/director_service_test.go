package services

import (
	"context"
	"testing"

	"moviecatalogapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorCreate_TrimsNames(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	result, err := srv.Create(ctx, &dto.DirectorRequest{
		FirstName: "  John ",
		LastName:  " Doe  ",
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "Director created successfully.", result.Message)

	item, err := srv.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "John", item.FirstName)
	assert.Equal(t, "Doe", item.LastName)
	assert.Equal(t, "John Doe", item.FullName)
	assert.NotEmpty(t, item.Guid)
}

func TestDirectorCreate_DuplicateNameRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	// Trimming happens before the uniqueness probe, so the padded variant
	// collides with the stored one.
	second, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: " John ", LastName: " Doe "})
	require.NoError(t, err)
	assert.False(t, second.IsSuccessful)
	assert.Equal(t, "Director with the same name already exists!", second.Message)
	assert.Zero(t, second.ID)
}

func TestDirectorCreate_UniquenessIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	// The name pair collides only on an exact byte match.
	second, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: "john", LastName: "doe"})
	require.NoError(t, err)
	assert.True(t, second.IsSuccessful)

	list, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDirectorUpdate_OwnNameAllowed(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	result, err := srv.Update(ctx, &dto.DirectorRequest{
		ID:        created.ID,
		FirstName: "John",
		LastName:  "Doe",
		IsRetired: true,
	})
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)

	item, err := srv.Item(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.IsRetired)
	assert.Equal(t, "Yes", item.IsRetiredF)
}

func TestDirectorUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)

	result, err := srv.Update(context.Background(), &dto.DirectorRequest{
		ID:        9999,
		FirstName: "Nobody",
		LastName:  "Home",
	})
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Director not found!", result.Message)
}

func TestDirectorDelete_WithMoviesRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	movieSrv := NewMovieServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	directorID := created.ID
	movieResult, err := movieSrv.Create(ctx, &dto.MovieRequest{
		Name:       "The Long Cut",
		DirectorID: &directorID,
	})
	require.NoError(t, err)
	require.True(t, movieResult.IsSuccessful)

	result, err := srv.Delete(ctx, directorID)
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Director can't be deleted because it has relational movies!", result.Message)

	// The refusal leaves the director in place.
	item, err := srv.Item(ctx, directorID)
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestDirectorDelete_WithoutMovies(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	result, err := srv.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)
	assert.Equal(t, "Director deleted successfully.", result.Message)

	item, err := srv.Item(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestDirectorDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)

	result, err := srv.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Director not found!", result.Message)
}

func TestDirectorList_OrderedByLastThenFirstName(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	for _, d := range []dto.DirectorRequest{
		{FirstName: "Zoe", LastName: "Smith"},
		{FirstName: "Ann", LastName: "Jones"},
		{FirstName: "Ann", LastName: "Smith"},
	} {
		request := d
		result, err := srv.Create(ctx, &request)
		require.NoError(t, err)
		require.True(t, result.IsSuccessful)
	}

	list, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ann Jones", list[0].FullName)
	assert.Equal(t, "Ann Smith", list[1].FullName)
	assert.Equal(t, "Zoe Smith", list[2].FullName)
}

func TestDirectorEdit_ReturnsMutableShape(t *testing.T) {
	db := newTestDB(t)
	srv := NewDirectorServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.DirectorRequest{FirstName: "John", LastName: "Doe", IsRetired: true})
	require.NoError(t, err)

	edit, err := srv.Edit(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, edit)
	assert.Equal(t, created.ID, edit.ID)
	assert.Equal(t, "John", edit.FirstName)
	assert.True(t, edit.IsRetired)

	missing, err := srv.Edit(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
