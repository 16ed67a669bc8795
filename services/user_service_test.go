package services

import (
	"context"
	"testing"
	"time"

	"moviecatalogapi/models"
	"moviecatalogapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func storedPassword(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return user.Password
}

func TestUserCreate_StampsRegistrationDate(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	ctx := context.Background()

	before := time.Now().UTC()
	result, err := srv.Create(ctx, &dto.UserRequest{
		UserName: " jdoe ",
		Password: "secret",
		Gender:   models.GenderWoman,
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "User created successfully.", result.Message)

	item, err := srv.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "jdoe", item.UserName)
	assert.Equal(t, models.GenderWoman, item.Gender)
	assert.False(t, item.RegistrationDate.Before(before.Truncate(time.Second)))
	assert.NotEmpty(t, item.RegistrationDateF)
}

func TestUserCreate_DuplicateUsernameRefused(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.UserRequest{UserName: "jdoe", Password: "secret"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	second, err := srv.Create(ctx, &dto.UserRequest{UserName: " jdoe ", Password: "other"})
	require.NoError(t, err)
	assert.False(t, second.IsSuccessful)
	assert.Equal(t, "User with the same username already exists!", second.Message)
}

func TestUserCreate_UniquenessIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	ctx := context.Background()

	first, err := srv.Create(ctx, &dto.UserRequest{UserName: "JDoe", Password: "secret"})
	require.NoError(t, err)
	require.True(t, first.IsSuccessful)

	// Usernames collide only on an exact byte match.
	second, err := srv.Create(ctx, &dto.UserRequest{UserName: "jdoe", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, second.IsSuccessful)

	list, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserUpdate_BlankPasswordKeepsCredential(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.UserRequest{UserName: "jdoe", Password: "secret"})
	require.NoError(t, err)

	result, err := srv.Update(ctx, &dto.UserRequest{
		ID:       created.ID,
		UserName: "jdoe",
		Password: "   ",
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "secret", storedPassword(t, db, created.ID))
}

func TestUserUpdate_NewPasswordReplacesCredential(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.UserRequest{UserName: "jdoe", Password: "secret"})
	require.NoError(t, err)

	result, err := srv.Update(ctx, &dto.UserRequest{
		ID:       created.ID,
		UserName: "jdoe",
		Password: "rotated",
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	assert.Equal(t, "rotated", storedPassword(t, db, created.ID))
}

func TestUserEdit_NeverEchoesCredential(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.UserRequest{UserName: "jdoe", Password: "secret"})
	require.NoError(t, err)

	edit, err := srv.Edit(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, edit)
	assert.Empty(t, edit.Password)
	assert.Equal(t, "jdoe", edit.UserName)
}

func TestUserDelete_CascadesRoleLinks(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	roleSrv := NewRoleServiceWithDB(db)
	ctx := context.Background()

	created, err := srv.Create(ctx, &dto.UserRequest{UserName: "jdoe", Password: "secret"})
	require.NoError(t, err)

	role, err := roleSrv.Create(ctx, &dto.RoleRequest{Name: "Editor"})
	require.NoError(t, err)

	link := &models.UserRole{UserID: created.ID, RoleID: role.ID}
	require.NoError(t, db.Create(link).Error)

	result, err := srv.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful)
	assert.Equal(t, "User deleted successfully.", result.Message)

	assert.EqualValues(t, 0, countRows(t, db, &models.UserRole{}, "user_id = ?", created.ID))

	// The role itself is untouched.
	item, err := roleSrv.Item(ctx, role.ID)
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestUserItem_ProjectsGroupName(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)
	groupSrv := NewGroupServiceWithDB(db)
	ctx := context.Background()

	group, err := groupSrv.Create(ctx, &dto.GroupRequest{Name: "Admins"})
	require.NoError(t, err)

	groupID := group.ID
	created, err := srv.Create(ctx, &dto.UserRequest{
		UserName: "jdoe",
		Password: "secret",
		GroupID:  &groupID,
	})
	require.NoError(t, err)

	item, err := srv.Item(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Admins", item.GroupName)
}

func TestUserDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	srv := NewUserServiceWithDB(db)

	result, err := srv.Delete(context.Background(), 31)
	require.NoError(t, err)
	assert.False(t, result.IsSuccessful)
	assert.Equal(t, "User not found!", result.Message)
}
