package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/pkg/auth"
)

type seedUserRepo struct {
	count     int64
	countErr  error
	createErr error
	created   []*models.User
}

func (r *seedUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.created = append(r.created, user)
	r.count++
	return r.count, nil
}

func (r *seedUserRepo) GetUserByUsername(context.Context, string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (r *seedUserRepo) GetAllUsers(context.Context) ([]*models.User, error) {
	return nil, errors.New("not implemented")
}

func (r *seedUserRepo) UsernameExists(context.Context, string) (bool, error) { return false, nil }
func (r *seedUserRepo) EmailExists(context.Context, string) (bool, error)    { return false, nil }

func (r *seedUserRepo) CountUsers(context.Context) (int64, error) {
	return r.count, r.countErr
}

func TestEnsureAdminUserCreatesOnEmptyTable(t *testing.T) {
	repo := &seedUserRepo{}

	err := EnsureAdminUser(context.Background(), repo, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	admin := repo.created[0]
	assert.Equal(t, "amit", admin.Username)
	assert.Equal(t, "admin", admin.Type)
	assert.NotEqual(t, "amit@123", admin.Password)
	assert.True(t, auth.CheckPassword(admin.Password, "amit@123"))
}

func TestEnsureAdminUserIdempotent(t *testing.T) {
	repo := &seedUserRepo{}

	require.NoError(t, EnsureAdminUser(context.Background(), repo, zerolog.Nop()))
	require.NoError(t, EnsureAdminUser(context.Background(), repo, zerolog.Nop()))

	assert.Len(t, repo.created, 1, "a second run must not create another admin")
}

func TestEnsureAdminUserSkipsWhenUsersExist(t *testing.T) {
	// A renamed or re-credentialed admin still counts as a user, so the
	// seed must not resurrect the default account.
	repo := &seedUserRepo{count: 3}

	require.NoError(t, EnsureAdminUser(context.Background(), repo, zerolog.Nop()))
	assert.Empty(t, repo.created)
}

func TestEnsureAdminUserPropagatesErrors(t *testing.T) {
	countFail := &seedUserRepo{countErr: errors.New("connection reset")}
	assert.Error(t, EnsureAdminUser(context.Background(), countFail, zerolog.Nop()))

	createFail := &seedUserRepo{createErr: errors.New("disk full")}
	assert.Error(t, EnsureAdminUser(context.Background(), createFail, zerolog.Nop()))
}
