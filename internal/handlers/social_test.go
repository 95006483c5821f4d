package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/quillhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *HandlersTestSuite) TestFollowAuthorRedirectsToProfile() {
	t := suite.T()

	follower := suite.createUser("ben")
	author := suite.createUser("ana")

	w := suite.postForm("/profile/ana/follow", nil, follower)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/ana", w.Header().Get("Location"))

	following, err := suite.graph.IsFollowing(context.Background(), follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func (suite *HandlersTestSuite) TestFollowTwiceLeavesOneEdge() {
	t := suite.T()

	follower := suite.createUser("ben")
	suite.createUser("ana")

	for i := 0; i < 2; i++ {
		w := suite.postForm("/profile/ana/follow", nil, follower)
		require.Equal(t, http.StatusFound, w.Code)
	}

	var count int64
	suite.db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func (suite *HandlersTestSuite) TestSelfFollowIsSilentNoOp() {
	t := suite.T()

	user := suite.createUser("ana")

	w := suite.postForm("/profile/ana/follow", nil, user)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/ana", w.Header().Get("Location"))

	var count int64
	suite.db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func (suite *HandlersTestSuite) TestFollowUnknownAuthor() {
	t := suite.T()

	follower := suite.createUser("ben")

	w := suite.postForm("/profile/ghost/follow", nil, follower)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestFollowRequiresAuth() {
	t := suite.T()

	suite.createUser("ana")

	w := suite.postForm("/profile/ana/follow", nil, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login?next=%2Fprofile%2Fana%2Ffollow", w.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestUnfollowRemovesEdge() {
	t := suite.T()

	follower := suite.createUser("ben")
	author := suite.createUser("ana")

	_, err := suite.graph.Follow(context.Background(), follower.ID, author.ID)
	require.NoError(t, err)

	w := suite.postForm("/profile/ana/unfollow", nil, follower)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/ana", w.Header().Get("Location"))

	following, err := suite.graph.IsFollowing(context.Background(), follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

// Unfollowing someone you never followed is an error, unlike the forgiving
// follow side.
func (suite *HandlersTestSuite) TestUnfollowWithoutEdgeIsNotFound() {
	t := suite.T()

	follower := suite.createUser("ben")
	suite.createUser("ana")

	w := suite.postForm("/profile/ana/unfollow", nil, follower)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCreateGroupValidation() {
	t := suite.T()

	user := suite.createUser("ana")

	w := suite.postForm("/groups", url.Values{"title": {"Poetry"}, "slug": {"poetry"}}, user)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate slug
	w = suite.postForm("/groups", url.Values{"title": {"Poetry Two"}, "slug": {"poetry"}}, user)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Malformed slug
	w = suite.postForm("/groups", url.Values{"title": {"Bad Slug"}, "slug": {"Not A Slug"}}, user)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
