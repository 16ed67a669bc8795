package services

import (
	"context"
	"testing"

	"moviecatalogapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCreate_TrimsName(t *testing.T) {
	db := newTestDB(t)
	srv := NewGroupServiceWithDB(db)
	ctx := context.Background()

	result, err := srv.Create(ctx, &dto.GroupRequest{Name: " Admins ", Description: "operators"})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "Group created successfully.", result.Message)

	item, err := srv.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Admins", item.Name)
	assert.Equal(t, "operators", item.Description)
}

func TestGroupCreate_DuplicateNameRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewGroupServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.GroupRequest{Name: "Admins"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	second, err := srv.Create(ctx, &dto.GroupRequest{Name: "Admins"})
	require.NoError(t, err)
	assert.False(t, second.IsSuccessful)
	assert.Equal(t, "Group with the same name already exists!", second.Message)
}

func TestGroupDelete_WithUsersRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewGroupServiceWithDB(db)
	userSrv := NewUserServiceWithDB(db)
	ctx := context.Background()

	group, err := srv.Create(ctx, &dto.GroupRequest{Name: "Admins"})
	require.NoError(t, err)

	groupID := group.ID
	user, err := userSrv.Create(ctx, &dto.UserRequest{
		UserName: "jdoe",
		Password: "secret",
		GroupID:  &groupID,
	})
	require.NoError(t, err)
	require.True(t, user.IsSuccessful)

	result, err := srv.Delete(ctx, groupID)
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Group can't be deleted because it has relational users!", result.Message)

	item, err := srv.Item(ctx, groupID)
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestGroupDelete_WithoutUsers(t *testing.T) {
	db := newTestDB(t)
	srv := NewGroupServiceWithDB(db)
	ctx := context.Background()

	group, err := srv.Create(ctx, &dto.GroupRequest{Name: "Admins"})
	require.NoError(t, err)

	result, err := srv.Delete(ctx, group.ID)
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)
	assert.Equal(t, "Group deleted successfully.", result.Message)

	item, err := srv.Item(ctx, group.ID)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestGroupDelete_UnblocksAfterUserRemoval(t *testing.T) {
	db := newTestDB(t)
	srv := NewGroupServiceWithDB(db)
	userSrv := NewUserServiceWithDB(db)
	ctx := context.Background()

	group, err := srv.Create(ctx, &dto.GroupRequest{Name: "Admins"})
	require.NoError(t, err)

	groupID := group.ID
	user, err := userSrv.Create(ctx, &dto.UserRequest{
		UserName: "jdoe",
		Password: "secret",
		GroupID:  &groupID,
	})
	require.NoError(t, err)

	blocked, err := srv.Delete(ctx, groupID)
	require.NoError(t, err)
	require.False(t, blocked.IsSuccessful)

	removed, err := userSrv.Delete(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, removed.IsSuccessful)

	result, err := srv.Delete(ctx, groupID)
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)
}

func TestGroupUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewGroupServiceWithDB(db)

	result, err := srv.Update(context.Background(), &dto.GroupRequest{ID: 50, Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Group not found!", result.Message)
}
