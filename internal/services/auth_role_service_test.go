package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{data: make(map[string]string)} }

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeRoleSource struct {
	roles map[uint64]string
	hits  int
}

func (f *fakeRoleSource) GetRole(ctx context.Context, id uint64) (string, error) {
	f.hits++
	role, ok := f.roles[id]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return role, nil
}

func (f *fakeRoleSource) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeRoleSource) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeRoleSource) GetUsers(ctx context.Context) ([]entities.User, error) { return nil, nil }

func (f *fakeRoleSource) TouchLastSignedIn(ctx context.Context, id uint64) error { return nil }

func TestGetRoleCachesResult(t *testing.T) {
	users := &fakeRoleSource{roles: map[uint64]string{42: "admin"}}
	svc := NewAuthRoleService(users, newFakeCache(), time.Minute, zap.NewNop())

	ctx := context.Background()
	role, err := svc.GetRole(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)

	// Второй запрос идёт из кеша, база не трогается.
	role, err = svc.GetRole(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
	assert.Equal(t, 1, users.hits)
}

func TestGetRoleUnknownUser(t *testing.T) {
	users := &fakeRoleSource{roles: map[uint64]string{}}
	svc := NewAuthRoleService(users, newFakeCache(), time.Minute, zap.NewNop())

	_, err := svc.GetRole(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInvalidateRoleDropsCache(t *testing.T) {
	users := &fakeRoleSource{roles: map[uint64]string{42: "user"}}
	cache := newFakeCache()
	svc := NewAuthRoleService(users, cache, time.Minute, zap.NewNop())

	ctx := context.Background()
	_, err := svc.GetRole(ctx, 42)
	require.NoError(t, err)

	users.roles[42] = "admin"
	require.NoError(t, svc.InvalidateRole(ctx, 42))

	role, err := svc.GetRole(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}
