package service

import (
	"context"
	"errors"
	"testing"

	"Spotlight/models"
	"Spotlight/pkg/response"
	"Spotlight/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCurrentUser_NilIdentity(t *testing.T) {
	// no DAO wired: any store access would panic
	s := &UserService{}

	_, err := s.ResolveCurrentUser(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 401, be.Code)
	assert.Equal(t, response.KindUnauthorized, be.Kind)
}

func TestResolveCurrentUser_UnknownSubject(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.ResolveCurrentUser(context.Background(), &types.Identity{Subject: "user_missing"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSyncFromEvent_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	event := &types.ClerkUserEvent{
		ExternalID: "user_2abc",
		Email:      "jane.doe@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		ImageURL:   "https://img.clerk.com/jane",
	}

	created, err := f.users.SyncFromEvent(ctx, event)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = f.users.SyncFromEvent(ctx, event)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Where("clerk_id = ?", "user_2abc").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	user, err := f.users.ResolveCurrentUser(ctx, &types.Identity{Subject: "user_2abc"})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", user.Username)
	assert.Equal(t, "Jane Doe", user.Fullname)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "https://img.clerk.com/jane", user.Image)
	assert.Zero(t, user.Followers)
	assert.Zero(t, user.Following)
	assert.Zero(t, user.Posts)
}

func TestSyncFromEvent_TrimsMissingName(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.SyncFromEvent(context.Background(), &types.ClerkUserEvent{ExternalID: "user_x", Email: "solo@example.com", FirstName: "Solo"})
	require.NoError(t, err)

	user, err := f.users.ResolveCurrentUser(context.Background(), &types.Identity{Subject: "user_x"})
	require.NoError(t, err)
	assert.Equal(t, "Solo", user.Fullname)
}

func TestSyncFromEvent_Malformed(t *testing.T) {
	s := &UserService{}
	ctx := context.Background()

	_, err := s.SyncFromEvent(ctx, nil)
	assert.ErrorIs(t, err, ErrMalformedEvent)
	_, err = s.SyncFromEvent(ctx, &types.ClerkUserEvent{ExternalID: "user_1"})
	assert.ErrorIs(t, err, ErrMalformedEvent)
	_, err = s.SyncFromEvent(ctx, &types.ClerkUserEvent{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestGetCurrentUserAndProfiles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1, id1 := f.seedUser(t, "user_1", "Ann", "Lee")
	u2, _ := f.seedUser(t, "user_2", "Bo", "Kim")

	me, err := f.users.GetCurrentUser(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, me.ID)
	assert.Equal(t, "Ann Lee", me.Fullname)

	profiles, err := f.users.BatchGetProfiles(ctx, []uint64{u1.ID, u2.ID, u1.ID, 404})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "Bo Kim", profiles[u2.ID].Fullname)
}
