package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/backend/internal/models"
)

func TestPresenceLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresenceService(db, nil)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	count, err := svc.OnlineCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	require.NoError(t, svc.SetOnline(ctx, alice.ID))
	require.NoError(t, svc.SetOnline(ctx, bob.ID))

	count, err = svc.OnlineCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, svc.SetOffline(ctx, alice.ID))

	count, err = svc.OnlineCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	var user models.User
	require.NoError(t, db.First(&user, alice.ID).Error)
	assert.False(t, user.IsOnline)
	assert.False(t, user.LastSeen.IsZero())
}
