package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quillhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *HandlersTestSuite) TestCreatePostRedirectsToProfile() {
	t := suite.T()

	author := suite.createUser("ana")

	w := suite.postForm("/posts", url.Values{"text": {"my first post"}}, author)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/ana", w.Header().Get("Location"))

	var count int64
	suite.db.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func (suite *HandlersTestSuite) TestCreatePostRequiresAuth() {
	t := suite.T()

	w := suite.postForm("/posts", url.Values{"text": {"anonymous post"}}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login?next=%2Fposts", w.Header().Get("Location"))

	var count int64
	suite.db.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func (suite *HandlersTestSuite) TestCreatePostBlankTextRejected() {
	t := suite.T()

	author := suite.createUser("ana")

	w := suite.postForm("/posts", url.Values{"text": {"   "}}, author)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "text", response["field"])
}

func (suite *HandlersTestSuite) TestCreatePostUnknownGroupRejected() {
	t := suite.T()

	author := suite.createUser("ana")

	w := suite.postForm("/posts", url.Values{
		"text":     {"a post"},
		"group_id": {"9999"},
	}, author)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestPostDetailShowsCommentsNewestFirst() {
	t := suite.T()

	author := suite.createUser("ana")
	post := suite.createPost(author, "a post")

	for i := 0; i < 2; i++ {
		comment := &models.Comment{
			Text:     fmt.Sprintf("comment %d", i),
			PostID:   &post.ID,
			AuthorID: &author.ID,
		}
		require.NoError(t, suite.db.Create(comment).Error)
	}

	w := suite.get(fmt.Sprintf("/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	comments := response["comments"].([]interface{})
	require.Len(t, comments, 2)
	assert.Equal(t, "comment 1", comments[0].(map[string]interface{})["text"])
}

func (suite *HandlersTestSuite) TestPostDetailUnknownID() {
	t := suite.T()

	w := suite.get("/posts/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = suite.get("/posts/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// A non-author submitting an edit is silently bounced to the detail view;
// the stored text must not change.
func (suite *HandlersTestSuite) TestEditPostByNonAuthorDoesNotSave() {
	t := suite.T()

	author := suite.createUser("ana")
	intruder := suite.createUser("ben")
	post := suite.createPost(author, "original text")

	w := suite.postForm(fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{"text": {"hijacked"}}, intruder)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), w.Header().Get("Location"))

	var reloaded models.Post
	require.NoError(t, suite.db.First(&reloaded, post.ID).Error)
	assert.Equal(t, "original text", reloaded.Text)
}

func (suite *HandlersTestSuite) TestEditPostByAuthorSaves() {
	t := suite.T()

	author := suite.createUser("ana")
	post := suite.createPost(author, "original text")

	w := suite.postForm(fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{"text": {"revised text"}}, author)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), w.Header().Get("Location"))

	var reloaded models.Post
	require.NoError(t, suite.db.First(&reloaded, post.ID).Error)
	assert.Equal(t, "revised text", reloaded.Text)
}

func (suite *HandlersTestSuite) TestEditUnknownPost() {
	t := suite.T()

	author := suite.createUser("ana")

	w := suite.postForm("/posts/9999/edit", url.Values{"text": {"whatever"}}, author)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCreateCommentRedirectsToDetail() {
	t := suite.T()

	author := suite.createUser("ana")
	commenter := suite.createUser("ben")
	post := suite.createPost(author, "a post")

	w := suite.postForm(fmt.Sprintf("/posts/%d/comments", post.ID), url.Values{"text": {"nice one"}}, commenter)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), w.Header().Get("Location"))

	var count int64
	suite.db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

// An invalid comment submission still redirects to the detail view, it just
// creates nothing.
func (suite *HandlersTestSuite) TestCreateCommentBlankTextIsSilentNoOp() {
	t := suite.T()

	author := suite.createUser("ana")
	post := suite.createPost(author, "a post")

	w := suite.postForm(fmt.Sprintf("/posts/%d/comments", post.ID), url.Values{"text": {"   "}}, author)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), w.Header().Get("Location"))

	var count int64
	suite.db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func (suite *HandlersTestSuite) TestCreateCommentUnknownPost() {
	t := suite.T()

	author := suite.createUser("ana")

	w := suite.postForm("/posts/9999/comments", url.Values{"text": {"hello"}}, author)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
