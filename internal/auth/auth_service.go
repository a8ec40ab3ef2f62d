package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	autherrors "go-hr-analytics/internal/auth/errors"
	"go-hr-analytics/internal/domain"
	"go-hr-analytics/internal/events"
	"go-hr-analytics/internal/messaging/kafka"
	"go-hr-analytics/internal/shared/clock"
	"go-hr-analytics/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Verify(ctx context.Context, req VerifyRequest) (TokenResponse, error)
	ResendCode(ctx context.Context, email string) error
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type Options struct {
	CodeTTL time.Duration
	// BootstrapAdminEmail registers with the admin role.
	BootstrapAdminEmail string
	BcryptCost          int
	Clock               clock.Clock
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	tokens *TokenIssuer
	opts   Options
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	tokens *TokenIssuer,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if opts.CodeTTL <= 0 {
		opts.CodeTTL = 15 * time.Minute
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	opts.Clock = clock.OrSystem(opts.Clock)
	opts.BootstrapAdminEmail = normalizeEmail(opts.BootstrapAdminEmail)

	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		tokens: tokens,
		opts:   opts,
		logger: l,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	email := normalizeEmail(req.Email)

	// 1. Tolak email yang sudah terdaftar
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, autherrors.ErrUserNotFound) {
		s.logger.Error("register lookup failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}

	// 2. Hash password dan kode verifikasi
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.opts.BcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}
	code, codeHash, expiresAt, err := s.newCode()
	if err != nil {
		return AuthResponse{}, err
	}

	role := domain.RoleViewer
	if s.opts.BootstrapAdminEmail != "" && email == s.opts.BootstrapAdminEmail {
		role = domain.RoleAdmin
	}

	user := &User{
		ID:                    uuid.New(),
		Name:                  strings.TrimSpace(req.Name),
		Email:                 email,
		Password:              string(hashed),
		Role:                  role,
		VerificationCodeHash:  codeHash,
		VerificationExpiresAt: &expiresAt,
	}

	// 3. User dan event outbox dalam satu transaksi
	err = s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.queueNotification(ctx, tx, events.VerificationRequested, *user, code, expiresAt)
	})
	if err != nil {
		if !errors.Is(err, autherrors.ErrEmailAlreadyExists) {
			s.logger.Error("register failed", zap.String("request_id", rid), zap.Error(err))
		}
		return AuthResponse{}, err
	}

	s.logger.Info("user registered",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("role", role),
	)
	return mapToResponse(*user), nil
}

func (s *service) Verify(ctx context.Context, req VerifyRequest) (TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return TokenResponse{}, autherrors.ErrInvalidCode
		}
		return TokenResponse{}, err
	}
	if user.IsVerified {
		return TokenResponse{}, autherrors.ErrAlreadyVerified
	}
	if !s.codeMatches(user.VerificationCodeHash, user.VerificationExpiresAt, req.Code) {
		return TokenResponse{}, autherrors.ErrInvalidCode
	}

	user.IsVerified = true
	user.VerificationCodeHash = ""
	user.VerificationExpiresAt = nil
	if err := s.repo.Update(ctx, user); err != nil {
		return TokenResponse{}, err
	}

	s.logger.Info("user verified", zap.String("user_id", user.ID.String()))
	return s.issue(*user)
}

func (s *service) ResendCode(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user.IsVerified {
		return autherrors.ErrAlreadyVerified
	}

	code, codeHash, expiresAt, err := s.newCode()
	if err != nil {
		return err
	}
	user.VerificationCodeHash = codeHash
	user.VerificationExpiresAt = &expiresAt

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Update(ctx, user); err != nil {
			return err
		}
		return s.queueNotification(ctx, tx, events.VerificationRequested, *user, code, expiresAt)
	})
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return TokenResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return TokenResponse{}, autherrors.ErrEmailNotVerified
	}
	return s.issue(*user)
}

// ForgotPassword never reveals whether the email exists.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	rid := contextutil.GetRequestID(ctx)
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			s.logger.Info("password reset for unknown email ignored", zap.String("request_id", rid))
			return nil
		}
		return err
	}

	code, codeHash, expiresAt, err := s.newCode()
	if err != nil {
		return err
	}
	user.ResetCodeHash = codeHash
	user.ResetExpiresAt = &expiresAt

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Update(ctx, user); err != nil {
			return err
		}
		return s.queueNotification(ctx, tx, events.PasswordResetRequested, *user, code, expiresAt)
	})
	if err != nil {
		s.logger.Error("password reset request failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return autherrors.ErrInvalidCode
		}
		return err
	}
	if !s.codeMatches(user.ResetCodeHash, user.ResetExpiresAt, req.Code) {
		return autherrors.ErrInvalidCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.opts.BcryptCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.ResetCodeHash = ""
	user.ResetExpiresAt = nil
	// reset code membuktikan kepemilikan email
	user.IsVerified = true

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) issue(u User) (TokenResponse, error) {
	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{AccessToken: token, ExpiresAt: exp, User: mapToResponse(u)}, nil
}

func (s *service) newCode() (code, hash string, expiresAt time.Time, err error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", "", time.Time{}, err
	}
	code = fmt.Sprintf("%06d", n.Int64())
	h, err := bcrypt.GenerateFromPassword([]byte(code), s.opts.BcryptCost)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return code, string(h), s.opts.Clock.Now().Add(s.opts.CodeTTL), nil
}

func (s *service) codeMatches(hash string, expiresAt *time.Time, code string) bool {
	if hash == "" || expiresAt == nil || !s.opts.Clock.Now().Before(*expiresAt) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

func (s *service) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) queueNotification(ctx context.Context, tx *sql.Tx, eventType string, u User, code string, expiresAt time.Time) error {
	if s.outbox == nil {
		return nil
	}
	payload, err := json.Marshal(events.AccountNotificationEvent{
		EventType:  eventType,
		UserID:     u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		Code:       code,
		ExpiresAt:  expiresAt.UTC(),
		OccurredAt: s.opts.Clock.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "user",
		AggregateID:   u.ID.String(),
		EventType:     eventType,
		Topic:         events.AccountNotificationsTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
