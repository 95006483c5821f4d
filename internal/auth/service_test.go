package auth

import (
	"context"
	"testing"
	"time"

	"github.com/quillhub/backend/internal/logger"
	"github.com/quillhub/backend/internal/models"
	"github.com/quillhub/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// AuthServiceTestSuite contains auth service tests
type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *Service
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	logger.InitializeForTests()

	db, err := gorm.Open(sqlite.Open("file:authtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), db.AutoMigrate(&models.User{}))

	suite.db = db
	suite.service = NewService(store.New(db), []byte("test_jwt_secret_key"))
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM users")
}

func (suite *AuthServiceTestSuite) TestRegisterAndLogin() {
	t := suite.T()
	ctx := context.Background()

	resp, err := suite.service.Register(ctx, RegisterRequest{
		Email:    "ana@test.com",
		Username: "ana",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana", resp.User.Username)
	// Display name falls back to the username.
	assert.Equal(t, "ana", resp.User.DisplayName)

	login, err := suite.service.Login(ctx, LoginRequest{
		Email:    "ana@test.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	t := suite.T()
	ctx := context.Background()

	_, err := suite.service.Register(ctx, RegisterRequest{
		Email: "ana@test.com", Username: "ana", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = suite.service.Register(ctx, RegisterRequest{
		Email: "ana@test.com", Username: "other", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = suite.service.Register(ctx, RegisterRequest{
		Email: "other@test.com", Username: "ana", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	t := suite.T()
	ctx := context.Background()

	_, err := suite.service.Register(ctx, RegisterRequest{
		Email: "ana@test.com", Username: "ana", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = suite.service.Login(ctx, LoginRequest{
		Email: "ana@test.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = suite.service.Login(ctx, LoginRequest{
		Email: "nobody@test.com", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestTokenRoundTrip() {
	t := suite.T()
	ctx := context.Background()

	resp, err := suite.service.Register(ctx, RegisterRequest{
		Email: "ana@test.com", Username: "ana", Password: "correct-horse",
	})
	require.NoError(t, err)

	user, err := suite.service.UserFromToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
}

func (suite *AuthServiceTestSuite) TestExpiredTokenRejected() {
	t := suite.T()
	ctx := context.Background()

	resp, err := suite.service.Register(ctx, RegisterRequest{
		Email: "ana@test.com", Username: "ana", Password: "correct-horse",
	})
	require.NoError(t, err)

	expired, err := suite.service.GenerateToken(resp.User, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	_, err = suite.service.UserFromToken(ctx, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestGarbageTokenRejected() {
	t := suite.T()

	_, err := suite.service.UserFromToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
