package repository

import (
	"testing"

	userdomain "cropadvisor-backend/internal/user/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userdomain.User{}))
	return NewUserRepository(db)
}

func seedUser(t *testing.T, repo UserRepository, email string) *userdomain.User {
	t.Helper()
	user := &userdomain.User{
		Email:    email,
		Password: "hash",
		Name:     "Test User",
		Picture:  userdomain.DefaultPicture,
		Plan:     userdomain.PlanFree,
		Credits:  userdomain.SignupCredits,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := newTestRepo(t)
	user := seedUser(t, repo, "a@farm.com")

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestCreateDuplicateEmailFails(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, "a@farm.com")

	dup := &userdomain.User{Email: "a@farm.com", Password: "hash", Name: "Other"}
	assert.Error(t, repo.Create(dup))
}

func TestFindByEmailNotFoundReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	user, err := repo.FindByEmail("nobody@farm.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindByIDRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "a@farm.com")

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.Email, found.Email)
	assert.Equal(t, userdomain.SignupCredits, found.Credits)
}

func TestUpdateFieldsPartial(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "a@farm.com")

	updated, err := repo.UpdateFields(created.ID, map[string]interface{}{"name": "Renamed"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Picture, updated.Picture)
}

func TestUpdateFieldsWithExpression(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "a@farm.com")

	updated, err := repo.UpdateFields(created.ID, map[string]interface{}{
		"plan":    userdomain.PlanPro,
		"credits": gorm.Expr("credits + ?", 50),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, userdomain.PlanPro, updated.Plan)
	assert.Equal(t, userdomain.SignupCredits+50, updated.Credits)
}

func TestUpdateFieldsUnknownIDReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	updated, err := repo.UpdateFields("missing", map[string]interface{}{"name": "X"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateFieldsEmptyMapIsAFetch(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "a@farm.com")

	same, err := repo.UpdateFields(created.ID, map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, same)
	assert.Equal(t, created.Name, same.Name)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "a@farm.com")

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err = repo.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, CheckPasswordHash("pw123456", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
