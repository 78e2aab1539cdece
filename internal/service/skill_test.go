package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/types"
)

func float64Ptr(f float64) *float64 { return &f }

func createSkill(t *testing.T, svc *SkillService, userID uint, title string) *models.Skill {
	t.Helper()

	skill, err := svc.Create(context.Background(), userID, &types.CreateSkillRequest{
		Title:       title,
		Description: "A description",
		Category:    "Music",
		Hours:       2,
	})
	require.NoError(t, err)
	return skill
}

func TestCreateSkillValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)
	user := createUser(t, db, "alice")

	cases := []types.CreateSkillRequest{
		{Description: "d", Category: "c", Hours: 1},
		{Title: "t", Category: "c", Hours: 1},
		{Title: "t", Description: "d", Hours: 1},
		{Title: "t", Description: "d", Category: "c"},
		{Title: "t", Description: "d", Category: "c", Hours: -1},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), user.ID, &req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestUpdateSkillPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)
	user := createUser(t, db, "alice")
	skill := createSkill(t, svc, user.ID, "Guitar Lessons")

	updated, err := svc.Update(context.Background(), user.ID, skill.ID, &types.UpdateSkillRequest{
		Hours: float64Ptr(4.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.Hours)
	assert.Equal(t, "Guitar Lessons", updated.Title)

	_, err = svc.Update(context.Background(), user.ID, skill.ID, &types.UpdateSkillRequest{})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestSkillOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	skill := createSkill(t, svc, alice.ID, "Guitar Lessons")
	ctx := context.Background()

	// Another user's update or delete looks exactly like a missing row.
	_, err := svc.Update(ctx, bob.ID, skill.ID, &types.UpdateSkillRequest{Hours: float64Ptr(1)})
	assert.ErrorIs(t, err, ErrSkillNotFound)

	err = svc.Delete(ctx, bob.ID, skill.ID)
	assert.ErrorIs(t, err, ErrSkillNotFound)

	var unchanged models.Skill
	require.NoError(t, db.First(&unchanged, skill.ID).Error)
	assert.Equal(t, float64(2), unchanged.Hours)

	require.NoError(t, svc.Delete(ctx, alice.ID, skill.ID))
	assert.ErrorIs(t, svc.Delete(ctx, alice.ID, skill.ID), ErrSkillNotFound)
}

func TestListMine(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createSkill(t, svc, alice.ID, "Guitar Lessons")
	createSkill(t, svc, bob.ID, "Cooking Basics")

	mine, err := svc.ListMine(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Guitar Lessons", mine[0].Title)
}

func TestListAllCarriesOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)
	alice := createUser(t, db, "alice")
	createSkill(t, svc, alice.ID, "Guitar Lessons")

	listings, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Guitar Lessons", listings[0].Title)
	assert.Equal(t, "alice", listings[0].Owner.Username)
	assert.Equal(t, alice.ID, listings[0].Owner.ID)
}

func TestGetBumpsViews(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db)
	alice := createUser(t, db, "alice")
	skill := createSkill(t, svc, alice.ID, "Guitar Lessons")
	ctx := context.Background()

	listing, err := svc.Get(ctx, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, listing.Views)
	assert.Equal(t, "alice", listing.Owner.Username)

	listing, err = svc.Get(ctx, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, listing.Views)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}
