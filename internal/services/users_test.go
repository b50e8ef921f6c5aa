package services_test

import (
	"context"
	"testing"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUser(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	user, created, err := services.EnsureUser(ctx, db, "me", "Me")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Me", *user.DisplayName)

	again, created, err := services.EnsureUser(ctx, db, "me", "Someone Else")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Me", *again.DisplayName)

	_, _, err = services.EnsureUser(ctx, db, " ", "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestGetUserProfile(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "me")
	testutil.CreateBoard(t, db, user.ID, "one", models.BoardPublic)
	testutil.CreateBoard(t, db, user.ID, "two", models.BoardPrivate)
	testutil.CreateTextBlock(t, db, user.ID, "a")

	profile, err := services.GetUserProfile(ctx, db, "me")
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, int64(2), profile.ChannelsCount)
	assert.Equal(t, int64(1), profile.BlocksCount)
	assert.False(t, profile.JoinedDate.IsZero())

	_, err = services.GetUserProfile(ctx, db, "nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
