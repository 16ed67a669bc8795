package services

import (
	"context"
	"testing"

	"moviecatalogapi/models"
	"moviecatalogapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCreate_TrimsName(t *testing.T) {
	db := newTestDB(t)
	srv := NewRoleServiceWithDB(db)
	ctx := context.Background()

	result, err := srv.Create(ctx, &dto.RoleRequest{Name: " Editor "})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "Role created successfully.", result.Message)

	item, err := srv.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Editor", item.Name)
}

func TestRoleCreate_DuplicateNameRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewRoleServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.RoleRequest{Name: "Editor"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	second, err := srv.Create(ctx, &dto.RoleRequest{Name: "Editor"})
	require.NoError(t, err)
	assert.False(t, second.IsSuccessful)
	assert.Equal(t, "Role with the same name already exists!", second.Message)
}

func TestRoleUpdate_ExcludesSelfFromUniqueness(t *testing.T) {
	db := newTestDB(t)
	srv := NewRoleServiceWithDB(db)
	ctx := context.Background()

	editor, err := srv.Create(ctx, &dto.RoleRequest{Name: "Editor"})
	require.NoError(t, err)
	viewer, err := srv.Create(ctx, &dto.RoleRequest{Name: "Viewer"})
	require.NoError(t, err)

	clash, err := srv.Update(ctx, &dto.RoleRequest{ID: viewer.ID, Name: "Editor"})
	require.NoError(t, err)
	assert.False(t, clash.IsSuccessful)
	assert.Equal(t, "Role with the same name already exists!", clash.Message)

	same, err := srv.Update(ctx, &dto.RoleRequest{ID: editor.ID, Name: "Editor"})
	require.NoError(t, err)
	assert.True(t, same.IsSuccessful)
}

func TestRoleDelete_RemovesUserLinks(t *testing.T) {
	db := newTestDB(t)
	srv := NewRoleServiceWithDB(db)
	userSrv := NewUserServiceWithDB(db)
	ctx := context.Background()

	role, err := srv.Create(ctx, &dto.RoleRequest{Name: "Editor"})
	require.NoError(t, err)

	user, err := userSrv.Create(ctx, &dto.UserRequest{UserName: "jdoe", Password: "secret"})
	require.NoError(t, err)

	link := &models.UserRole{UserID: user.ID, RoleID: role.ID}
	require.NoError(t, db.Create(link).Error)
	require.EqualValues(t, 1, countRows(t, db, &models.UserRole{}, "role_id = ?", role.ID))

	result, err := srv.Delete(ctx, role.ID)
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)
	assert.Equal(t, "Role deleted successfully.", result.Message)

	assert.EqualValues(t, 0, countRows(t, db, &models.UserRole{}, "role_id = ?", role.ID))

	// The linked user is untouched.
	item, err := userSrv.Item(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestRoleDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewRoleServiceWithDB(db)

	result, err := srv.Delete(context.Background(), 11)
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "Role not found!", result.Message)
}
