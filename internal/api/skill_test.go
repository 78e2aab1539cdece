package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/backend/internal/models"
)

func createTestSkill(t *testing.T, router *gin.Engine, token, title string) uint {
	t.Helper()

	w := performRequest(router, http.MethodPost, "/api/user/skills", token, gin.H{
		"title":       title,
		"description": "Beginner to advanced",
		"category":    "Programming",
		"hours":       3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var skill models.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skill))
	return skill.ID
}

func TestCreateSkill(t *testing.T) {
	router, _ := newTestRouter(t)
	id, token := signupTestUser(t, router, "alice")

	w := performRequest(router, http.MethodPost, "/api/user/skills", token, gin.H{
		"title":       "Python Programming",
		"description": "Data structures, OOP and basic ML",
		"category":    "Programming",
		"hours":       3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "Python Programming", body["title"])
	assert.EqualValues(t, id, body["user_id"])
}

func TestCreateSkillMissingFields(t *testing.T) {
	router, db := newTestRouter(t)
	_, token := signupTestUser(t, router, "alice")

	// hours missing
	w := performRequest(router, http.MethodPost, "/api/user/skills", token, gin.H{
		"title":       "Photography",
		"description": "Lighting and composition",
		"category":    "Design",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, w)["message"])

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateSkillPartial(t *testing.T) {
	router, _ := newTestRouter(t)
	_, token := signupTestUser(t, router, "alice")
	skillID := createTestSkill(t, router, token, "Guitar Lessons")

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/user/skills/%d", skillID), token, gin.H{
		"hours": 4.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 4.5, body["hours"])
	assert.Equal(t, "Guitar Lessons", body["title"])
}

func TestUpdateSkillNoFields(t *testing.T) {
	router, _ := newTestRouter(t)
	_, token := signupTestUser(t, router, "alice")
	skillID := createTestSkill(t, router, token, "Guitar Lessons")

	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/user/skills/%d", skillID), token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", decodeBody(t, w)["message"])
}

func TestSkillOwnershipEnforced(t *testing.T) {
	router, db := newTestRouter(t)
	_, aliceToken := signupTestUser(t, router, "alice")
	_, bobToken := signupTestUser(t, router, "bob")
	skillID := createTestSkill(t, router, aliceToken, "Guitar Lessons")

	// Bob can neither update nor delete Alice's listing; the response
	// does not reveal whether the row exists.
	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/user/skills/%d", skillID), bobToken, gin.H{
		"title": "stolen",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Skill not found", decodeBody(t, w)["message"])

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/user/skills/%d", skillID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var skill models.Skill
	require.NoError(t, db.First(&skill, skillID).Error)
	assert.Equal(t, "Guitar Lessons", skill.Title)
}

func TestDeleteSkill(t *testing.T) {
	router, db := newTestRouter(t)
	_, token := signupTestUser(t, router, "alice")
	skillID := createTestSkill(t, router, token, "Guitar Lessons")

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/user/skills/%d", skillID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Skill deleted successfully", decodeBody(t, w)["message"])

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/user/skills/%d", skillID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMySkills(t *testing.T) {
	router, _ := newTestRouter(t)
	_, aliceToken := signupTestUser(t, router, "alice")
	_, bobToken := signupTestUser(t, router, "bob")
	createTestSkill(t, router, aliceToken, "Guitar Lessons")
	createTestSkill(t, router, bobToken, "Photography")

	w := performRequest(router, http.MethodGet, "/api/user/skills", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var skills []models.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skills))
	require.Len(t, skills, 1)
	assert.Equal(t, "Guitar Lessons", skills[0].Title)
}

func TestBrowseSkillsCarriesOwner(t *testing.T) {
	router, _ := newTestRouter(t)
	_, aliceToken := signupTestUser(t, router, "alice")
	_, bobToken := signupTestUser(t, router, "bob")
	createTestSkill(t, router, aliceToken, "Guitar Lessons")
	createTestSkill(t, router, bobToken, "Photography")

	// Alice logs in so her online flag is set.
	w := performRequest(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/skills", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listings []struct {
		Title string `json:"title"`
		User  struct {
			Username string `json:"username"`
			IsOnline bool   `json:"is_online"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	require.Len(t, listings, 2)

	byTitle := map[string]bool{}
	for _, l := range listings {
		byTitle[l.Title] = l.User.IsOnline
		if l.Title == "Guitar Lessons" {
			assert.Equal(t, "alice", l.User.Username)
		}
	}
	assert.True(t, byTitle["Guitar Lessons"])
	assert.False(t, byTitle["Photography"])
}

func TestGetSkillBumpsViews(t *testing.T) {
	router, _ := newTestRouter(t)
	_, token := signupTestUser(t, router, "alice")
	skillID := createTestSkill(t, router, token, "Guitar Lessons")

	path := fmt.Sprintf("/api/skills/%d", skillID)
	w := performRequest(router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["views"])

	w = performRequest(router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decodeBody(t, w)["views"])
}

func TestGetSkillNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/skills/999", "/api/skills/abc"} {
		w := performRequest(router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Skill not found", decodeBody(t, w)["message"])
	}
}
