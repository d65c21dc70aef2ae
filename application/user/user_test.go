package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/codefanw/mall-backend/application/user"
	"github.com/codefanw/mall-backend/cmd/config"
	"github.com/codefanw/mall-backend/constant"
	mockRedisRepo "github.com/codefanw/mall-backend/mocks/repository/redis"
	mockUserRepo "github.com/codefanw/mall-backend/mocks/repository/user"
	"github.com/codefanw/mall-backend/model"
	"github.com/codefanw/mall-backend/utils/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiration = time.Hour
	cfg.Auth.SessionExpTime = time.Hour
	return cfg
}

func TestUserApp_Register(t *testing.T) {
	ctx := context.Background()
	req := &model.RegisterRequest{
		Phone:    "13800000000",
		Email:    "buyer@example.com",
		Password: "secret123",
	}

	t.Run("success", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		userRepo.On("Get", ctx, &model.UserFilter{Phone: req.Phone}).Return(nil, nil)
		userRepo.On("Get", ctx, &model.UserFilter{Email: req.Email}).Return(nil, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *model.UserEntity) bool {
			if u.Phone != req.Phone || u.Email == nil || *u.Email != req.Email {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil
		})).Return(&model.UserEntity{ID: 11, Phone: req.Phone}, nil)

		app := user.NewUserApp(testConfig(), userRepo, nil)
		got, err := app.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint64(11), got.UserID)
	})

	t.Run("phone already registered", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		userRepo.On("Get", ctx, &model.UserFilter{Phone: req.Phone}).Return(&model.UserEntity{ID: 1}, nil)

		app := user.NewUserApp(testConfig(), userRepo, nil)
		got, err := app.Register(ctx, req)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrCredentialExists), err)
	})

	t.Run("email already registered", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		userRepo.On("Get", ctx, &model.UserFilter{Phone: req.Phone}).Return(nil, nil)
		userRepo.On("Get", ctx, &model.UserFilter{Email: req.Email}).Return(&model.UserEntity{ID: 2}, nil)

		app := user.NewUserApp(testConfig(), userRepo, nil)
		got, err := app.Register(ctx, req)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrCredentialExists), err)
	})
}

func TestUserApp_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &model.UserEntity{ID: 11, Phone: "13800000000", PasswordHash: string(hash)}

	t.Run("login by phone", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		redisRepo := mockRedisRepo.NewRepository(t)

		userRepo.On("Get", ctx, &model.UserFilter{Phone: "13800000000"}).Return(stored, nil)
		redisRepo.On("SetSession", ctx, mock.Anything, uint64(11), time.Hour).Return(nil)

		app := user.NewUserApp(testConfig(), userRepo, redisRepo)
		got, err := app.Login(ctx, &model.LoginRequest{Identifier: "13800000000", Password: "secret123"})

		assert.NoError(t, err)
		assert.Equal(t, uint64(11), got.UserID)
		assert.NotEmpty(t, got.Token)
	})

	t.Run("login by email", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		redisRepo := mockRedisRepo.NewRepository(t)

		userRepo.On("Get", ctx, &model.UserFilter{Email: "buyer@example.com"}).Return(stored, nil)
		redisRepo.On("SetSession", ctx, mock.Anything, uint64(11), time.Hour).Return(nil)

		app := user.NewUserApp(testConfig(), userRepo, redisRepo)
		got, err := app.Login(ctx, &model.LoginRequest{Identifier: "buyer@example.com", Password: "secret123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, got.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		userRepo.On("Get", ctx, &model.UserFilter{Phone: "13800000000"}).Return(stored, nil)

		app := user.NewUserApp(testConfig(), userRepo, nil)
		got, err := app.Login(ctx, &model.LoginRequest{Identifier: "13800000000", Password: "nope"})

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrInvalidPassword), err)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := mockUserRepo.NewUserRepository(t)
		userRepo.On("Get", ctx, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil)

		app := user.NewUserApp(testConfig(), userRepo, nil)
		got, err := app.Login(ctx, &model.LoginRequest{Identifier: "nobody@example.com", Password: "secret123"})

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})
}

func TestUserApp_ValidateToken(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &model.UserEntity{ID: 11, Phone: "13800000000", PasswordHash: string(hash)}

	login := func(t *testing.T, redisRepo *mockRedisRepo.Repository) (user.UserApp, string) {
		userRepo := mockUserRepo.NewUserRepository(t)
		userRepo.On("Get", ctx, &model.UserFilter{Phone: "13800000000"}).Return(stored, nil)
		redisRepo.On("SetSession", ctx, mock.Anything, uint64(11), time.Hour).Return(nil)

		app := user.NewUserApp(testConfig(), userRepo, redisRepo)
		resp, err := app.Login(ctx, &model.LoginRequest{Identifier: "13800000000", Password: "secret123"})
		assert.NoError(t, err)
		return app, resp.Token
	}

	t.Run("valid token with live session", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		app, token := login(t, redisRepo)

		redisRepo.On("GetSession", ctx, mock.Anything).Return(uint64(11), nil)

		userID, err := app.ValidateToken(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(11), userID)
	})

	t.Run("session expired", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		app, token := login(t, redisRepo)

		redisRepo.On("GetSession", ctx, mock.Anything).Return(uint64(0), assert.AnError)

		userID, err := app.ValidateToken(ctx, token)
		assert.Error(t, err)
		assert.Equal(t, uint64(0), userID)
	})

	t.Run("session belongs to another user", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		app, token := login(t, redisRepo)

		redisRepo.On("GetSession", ctx, mock.Anything).Return(uint64(99), nil)

		userID, err := app.ValidateToken(ctx, token)
		assert.Error(t, err)
		assert.Equal(t, uint64(0), userID)
	})

	t.Run("garbage token", func(t *testing.T) {
		app := user.NewUserApp(testConfig(), nil, nil)
		userID, err := app.ValidateToken(ctx, "not.a.token")
		assert.Error(t, err)
		assert.Equal(t, uint64(0), userID)
	})
}
