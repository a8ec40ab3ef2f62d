package auth_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hr-analytics/internal/auth"
	autherrors "go-hr-analytics/internal/auth/errors"
	authMock "go-hr-analytics/internal/auth/mock"
	"go-hr-analytics/internal/domain"
	"go-hr-analytics/internal/events"
	"go-hr-analytics/internal/messaging/kafka"
	kafkaMock "go-hr-analytics/internal/messaging/kafka/mock"
	"go-hr-analytics/internal/shared/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

var now = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *authMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	service auth.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := authMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := auth.NewService(db, repo, outboxRepo, auth.NewTokenIssuer(testSecret, time.Hour, nil), auth.Options{
		CodeTTL:             15 * time.Minute,
		BootstrapAdminEmail: "Boss@Corp.io",
		BcryptCost:          bcrypt.MinCost,
		Clock:               clock.Fixed(now),
	})

	return &serviceDeps{db: db, sqlMock: sqlMock, repo: repo, outbox: outboxRepo, service: svc}
}

func hash(t *testing.T, s string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func ptr[T any](v T) *T { return &v }

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores unverified viewer and queues verification event", func(t *testing.T) {
		deps := setupServiceTest(t)

		var created *auth.User
		var queued kafka.OutboxEvent

		deps.repo.EXPECT().GetByEmail(ctx, "new@corp.io").Return(nil, autherrors.ErrUserNotFound)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			created = u
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			queued = e
			return nil
		})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{Name: "Sana", Email: " New@Corp.io ", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "new@corp.io", resp.Email)
		assert.Equal(t, domain.RoleViewer, resp.Role)
		assert.False(t, resp.IsVerified)

		require.NotNil(t, created)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
		assert.Equal(t, now.Add(15*time.Minute), *created.VerificationExpiresAt)

		assert.Equal(t, events.AccountNotificationsTopic, queued.Topic)
		assert.Equal(t, events.VerificationRequested, queued.EventType)
		assert.Equal(t, created.ID.String(), queued.AggregateID)

		var payload events.AccountNotificationEvent
		require.NoError(t, json.Unmarshal(queued.Payload, &payload))
		assert.Len(t, payload.Code, 6)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.VerificationCodeHash), []byte(payload.Code)))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("bootstrap email becomes admin", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().GetByEmail(ctx, "boss@corp.io").Return(nil, autherrors.ErrUserNotFound)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{Name: "Boss", Email: "boss@corp.io", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, resp.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "dup@corp.io").Return(&auth.User{Email: "dup@corp.io"}, nil)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Name: "x", Email: "dup@corp.io", Password: "password123"})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyExists)
	})

	t.Run("concurrent duplicate rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().GetByEmail(ctx, "race@corp.io").Return(nil, autherrors.ErrUserNotFound)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(autherrors.ErrEmailAlreadyExists)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Name: "x", Email: "race@corp.io", Password: "password123"})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()

	pending := func() *auth.User {
		return &auth.User{
			ID:                    uuid.New(),
			Email:                 "v@corp.io",
			Role:                  domain.RoleViewer,
			VerificationCodeHash:  hash(t, "123456"),
			VerificationExpiresAt: ptr(now.Add(5 * time.Minute)),
		}
	}

	t.Run("correct code verifies and issues token", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := pending()

		deps.repo.EXPECT().GetByEmail(ctx, "v@corp.io").Return(u, nil)
		deps.repo.EXPECT().Update(ctx, u).Return(nil)

		res, err := deps.service.Verify(ctx, auth.VerifyRequest{Email: "v@corp.io", Code: "123456"})
		require.NoError(t, err)
		assert.True(t, res.User.IsVerified)
		assert.Empty(t, u.VerificationCodeHash)

		token, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, u.ID.String(), claims["user_id"])
		assert.Equal(t, "v@corp.io", claims["email"])
		assert.Equal(t, domain.RoleViewer, claims["role"])
	})

	t.Run("wrong code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "v@corp.io").Return(pending(), nil)

		_, err := deps.service.Verify(ctx, auth.VerifyRequest{Email: "v@corp.io", Code: "000000"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCode)
	})

	t.Run("expired code", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := pending()
		u.VerificationExpiresAt = ptr(now.Add(-time.Second))
		deps.repo.EXPECT().GetByEmail(ctx, "v@corp.io").Return(u, nil)

		_, err := deps.service.Verify(ctx, auth.VerifyRequest{Email: "v@corp.io", Code: "123456"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCode)
	})

	t.Run("already verified", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "v@corp.io").Return(&auth.User{IsVerified: true}, nil)

		_, err := deps.service.Verify(ctx, auth.VerifyRequest{Email: "v@corp.io", Code: "123456"})
		assert.ErrorIs(t, err, autherrors.ErrAlreadyVerified)
	})

	t.Run("unknown email looks like a bad code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "ghost@corp.io").Return(nil, autherrors.ErrUserNotFound)

		_, err := deps.service.Verify(ctx, auth.VerifyRequest{Email: "ghost@corp.io", Code: "123456"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCode)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &auth.User{ID: uuid.New(), Email: "l@corp.io", Password: hash(t, "password123"), Role: domain.RoleHR, IsVerified: true}

	tests := []struct {
		name     string
		user     *auth.User
		repoErr  error
		password string
		wantErr  error
	}{
		{name: "success", user: user, password: "password123"},
		{name: "wrong password", user: user, password: "nope", wantErr: autherrors.ErrInvalidCredentials},
		{name: "unknown email", repoErr: autherrors.ErrUserNotFound, password: "password123", wantErr: autherrors.ErrInvalidCredentials},
		{
			name:     "unverified",
			user:     &auth.User{ID: uuid.New(), Email: "l@corp.io", Password: user.Password},
			password: "password123",
			wantErr:  autherrors.ErrEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			deps.repo.EXPECT().GetByEmail(ctx, "l@corp.io").Return(tt.user, tt.repoErr)

			res, err := deps.service.Login(ctx, auth.LoginRequest{Email: "L@corp.io", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
			assert.Equal(t, domain.RoleHR, res.User.Role)
		})
	}
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "ghost@corp.io").Return(nil, autherrors.ErrUserNotFound)

		assert.NoError(t, deps.service.ForgotPassword(ctx, "ghost@corp.io"))
	})

	t.Run("known email queues reset event", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &auth.User{ID: uuid.New(), Email: "r@corp.io", IsVerified: true}

		deps.repo.EXPECT().GetByEmail(ctx, "r@corp.io").Return(u, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, u).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.PasswordResetRequested, e.EventType)
			return nil
		})
		deps.sqlMock.ExpectCommit()

		assert.NoError(t, deps.service.ForgotPassword(ctx, "r@corp.io"))
		assert.NotEmpty(t, u.ResetCodeHash)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reset with valid code replaces password", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &auth.User{
			ID: uuid.New(), Email: "r@corp.io", Password: hash(t, "old-password"),
			ResetCodeHash: hash(t, "654321"), ResetExpiresAt: ptr(now.Add(time.Minute)),
		}

		deps.repo.EXPECT().GetByEmail(ctx, "r@corp.io").Return(u, nil)
		deps.repo.EXPECT().Update(ctx, u).Return(nil)

		err := deps.service.ResetPassword(ctx, auth.ResetPasswordRequest{Email: "r@corp.io", Code: "654321", Password: "new-password"})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-password")))
		assert.Empty(t, u.ResetCodeHash)
		assert.Nil(t, u.ResetExpiresAt)
	})

	t.Run("reset with wrong code", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &auth.User{ResetCodeHash: hash(t, "654321"), ResetExpiresAt: ptr(now.Add(time.Minute))}
		deps.repo.EXPECT().GetByEmail(ctx, "r@corp.io").Return(u, nil)

		err := deps.service.ResetPassword(ctx, auth.ResetPasswordRequest{Email: "r@corp.io", Code: "111111", Password: "new-password"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCode)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	id := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, id).Return(&auth.User{ID: id, Email: "me@corp.io", Role: domain.RoleAdmin}, nil)

	res, err := deps.service.GetMe(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, "me@corp.io", res.Email)

	_, err = deps.service.GetMe(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
