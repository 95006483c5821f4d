package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *HandlersTestSuite) TestIndexServesGlobalFeed() {
	t := suite.T()

	author := suite.createUser("ana")
	suite.createPost(author, "hello world")

	w := suite.get("/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	page := response["page"].(map[string]interface{})
	posts := page["posts"].([]interface{})
	assert.Len(t, posts, 1)
}

// Two index reads inside the cache window return byte-identical bodies even
// when a post lands between them; the explicit clear makes the next read
// fresh.
func (suite *HandlersTestSuite) TestIndexCacheStaleness() {
	t := suite.T()

	author := suite.createUser("ana")
	suite.createPost(author, "first post")

	r1 := suite.get("/", nil)
	require.Equal(t, http.StatusOK, r1.Code)
	assert.Equal(t, "MISS", r1.Header().Get("X-Cache"))

	// A write inside the cache window...
	suite.createPost(author, "second post")

	// ...is invisible to the next read.
	r2 := suite.get("/", nil)
	require.Equal(t, http.StatusOK, r2.Code)
	assert.Equal(t, "HIT", r2.Header().Get("X-Cache"))
	assert.Equal(t, r1.Body.Bytes(), r2.Body.Bytes())

	clear := suite.postForm("/admin/cache/clear", nil, author)
	require.Equal(t, http.StatusOK, clear.Code)

	// After the clear the new post shows up.
	r3 := suite.get("/", nil)
	require.Equal(t, http.StatusOK, r3.Code)
	assert.Equal(t, "MISS", r3.Header().Get("X-Cache"))
	assert.NotEqual(t, r1.Body.Bytes(), r3.Body.Bytes())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(r3.Body.Bytes(), &response))
	page := response["page"].(map[string]interface{})
	assert.Len(t, page["posts"].([]interface{}), 2)
}

func (suite *HandlersTestSuite) TestIndexLaterPagesBypassCache() {
	t := suite.T()

	author := suite.createUser("ana")
	suite.createPost(author, "a post")

	w := suite.get("/?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func (suite *HandlersTestSuite) TestGroupFeedUnknownSlug() {
	t := suite.T()

	w := suite.get("/group/no-such-group", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestProfileFollowingFlag() {
	t := suite.T()

	author := suite.createUser("ana")
	viewer := suite.createUser("ben")
	suite.createPost(author, "a post")

	_, err := suite.graph.Follow(context.Background(), viewer.ID, author.ID)
	require.NoError(t, err)

	// Anonymous viewers never see a true flag.
	w := suite.get("/profile/ana", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["following"])

	// A follower does.
	w = suite.get("/profile/ana", viewer)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["following"])

	// The author viewing themselves does not.
	w = suite.get("/profile/ana", author)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["following"])
}

func (suite *HandlersTestSuite) TestProfileUnknownUsername() {
	t := suite.T()

	w := suite.get("/profile/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestFollowingFeedRequiresAuth() {
	t := suite.T()

	w := suite.get("/follow", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login?next=%2Ffollow", w.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestFollowingFeedShowsFollowedAuthors() {
	t := suite.T()

	viewer := suite.createUser("ben")
	followed := suite.createUser("ana")
	ignored := suite.createUser("cay")
	suite.createPost(followed, "seen")
	suite.createPost(ignored, "unseen")

	_, err := suite.graph.Follow(context.Background(), viewer.ID, followed.ID)
	require.NoError(t, err)

	w := suite.get("/follow", viewer)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	page := response["page"].(map[string]interface{})
	posts := page["posts"].([]interface{})
	require.Len(t, posts, 1)
	assert.Equal(t, "seen", posts[0].(map[string]interface{})["text"])
}
