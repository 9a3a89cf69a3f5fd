package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abizer007/EcoThreads/internal/infrastructure/kv"
	"github.com/abizer007/EcoThreads/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setupUserService(t *testing.T) (*UserService, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := kv.NewStore(client)
	users := kv.NewUserRepository(store)
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	svc := NewUserService(users, jwt, client, testLogger(), nil, "ecothreads-test", time.Hour, false)
	return svc, client
}

func TestUserService_Signup(t *testing.T) {
	svc, client := setupUserService(t)
	ctx := context.Background()

	u, pair, err := svc.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Zero(t, u.Rating)
	assert.Zero(t, u.TotalReviews)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Session hash recorded.
	sess, err := client.HGetAll(ctx, "user:session:"+u.ID).Result()
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess["user_id"])
	assert.NotEmpty(t, sess["sid"])
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "", "password123", "Alice")
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = svc.Signup(ctx, "alice@example.com", "", "Alice")
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = svc.Signup(ctx, "alice@example.com", "password123", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, "alice@example.com", "different456", "Imposter")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_LoginAndRefresh(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	u, pair, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	newPair, uid, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, uid)
	assert.NotEmpty(t, newPair.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Refresh_StaleSessionID(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, first, err := svc.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	// A later login rotates the session id, invalidating the first refresh token.
	_, _, err = svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Logout(t *testing.T) {
	svc, client := setupUserService(t)
	ctx := context.Background()

	u, pair, err := svc.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, u.ID))

	exists, err := client.Exists(ctx, "user:session:"+u.ID).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	_, _, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
