package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *HandlersTestSuite) TestSignupIssuesSession() {
	t := suite.T()

	w := suite.postJSON("/auth/signup", `{
		"email": "ana@test.com",
		"username": "ana",
		"password": "correct-horse"
	}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	token, ok := response["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	// The session cookie rides along for browser clients.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "qh_session", cookies[0].Name)

	// The token works against a protected endpoint.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	suite.router.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
}

func (suite *HandlersTestSuite) TestSignupDuplicateUsername() {
	t := suite.T()

	suite.createUser("ana")

	w := suite.postJSON("/auth/signup", `{
		"email": "other@test.com",
		"username": "ana",
		"password": "correct-horse"
	}`, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "CONFLICT", response["code"])
	assert.Contains(t, response["message"], "username")
}

func (suite *HandlersTestSuite) TestSignupValidation() {
	t := suite.T()

	// Short password
	w := suite.postJSON("/auth/signup", `{
		"email": "ana@test.com",
		"username": "ana",
		"password": "short"
	}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Malformed email
	w = suite.postJSON("/auth/signup", `{
		"email": "not-an-email",
		"username": "ana",
		"password": "correct-horse"
	}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestLoginWrongCredentials() {
	t := suite.T()

	w := suite.postJSON("/auth/signup", `{
		"email": "ana@test.com",
		"username": "ana",
		"password": "correct-horse"
	}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = suite.postJSON("/auth/login", `{
		"email": "ana@test.com",
		"password": "wrong-password"
	}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestLoginFormEchoesReturnPath() {
	t := suite.T()

	w := suite.get("/auth/login?next=%2Ffollow", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "/follow", response["next"])
}

func (suite *HandlersTestSuite) TestMeRequiresAuth() {
	t := suite.T()

	w := suite.get("/auth/me", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login?next=%2Fauth%2Fme", w.Header().Get("Location"))
}
