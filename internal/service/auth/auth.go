package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/carelinkhq/carelink_backend/config"
	"github.com/carelinkhq/carelink_backend/internal/repo"
	entuser "github.com/carelinkhq/carelink_backend/internal/repo/user"
	"github.com/carelinkhq/carelink_backend/pkg/email"
	pasetotoken "github.com/carelinkhq/carelink_backend/pkg/paseto"
	"github.com/carelinkhq/carelink_backend/pkg/util/password"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}

type LoginRequest struct {
	Email    string
	Password string
}

// UserSummary is the sanitized account view returned by auth endpoints.
// It never carries the password hash.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
	User         UserSummary
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserSummary, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db         *repo.Client
	rdb        *redis.Client
	mail       *email.Client
	paseto     *pasetotoken.Manager
	policy     password.Policy
	params     *password.Params
	sessionTTL time.Duration
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	pwCfg := password.FromCentralConfig(cfg.Password)

	// Sessions outlive access tokens; they default to the refresh window
	// unless configured separately.
	sessionTTL := paseto.RefreshTTL()
	if m := cfg.Authentication.SessionTTLMinutes; m > 0 {
		sessionTTL = time.Duration(m) * time.Minute
	}

	return &authService{
		db:         db,
		rdb:        rdb,
		mail:       mail,
		paseto:     paseto,
		policy:     pwCfg.ToPolicy(),
		params:     pwCfg.ToParams(),
		sessionTTL: sessionTTL,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

// Register validates every field and reports all failures together rather
// than stopping at the first one.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*UserSummary, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	ve := validate.Errors{}

	if req.Email == "" {
		ve.Add("email", "This field is required.")
	} else if !validate.Email(req.Email) {
		ve.Add("email", "Enter a valid email address.")
	} else {
		exists, err := s.db.User.Query().Where(entuser.EmailEQ(req.Email)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if exists {
			ve.Add("email", "An account with this email already exists.")
		}
	}

	if req.FirstName == "" {
		ve.Add("first_name", "This field is required.")
	}

	for _, reason := range s.policy.Check(req.Password) {
		ve.Add("password", reason)
	}
	if req.Password != req.Password2 {
		ve.Add("password", "Password fields didn't match.")
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	passHash, err := password.HashWithParams(req.Password, s.params)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetFirstName(req.FirstName)
	if req.LastName != "" {
		q = q.SetLastName(req.LastName)
	}

	u, err := q.Save(ctx)
	if err != nil {
		// A concurrent registration may win the unique-email race; the
		// constraint violation still surfaces as a field error.
		if repo.IsConstraintError(err) {
			return nil, validate.Single("email", "An account with this email already exists.")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.sendWelcome(u)

	return summarize(u), nil
}

// sendWelcome fires the welcome email without blocking registration.
func (s *authService) sendWelcome(u *repo.User) {
	if s.mail == nil || !s.mail.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.mail.Send(ctx, email.WelcomeMessage(u.Email, u.FirstName)); err != nil {
			slog.Warn("welcome email failed", "user_id", u.ID, "error", err)
		}
	}()
}

// ---------------------------------------------------------------------------
// Login / Refresh / Logout
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))
	if emailAddr == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().Where(entuser.EmailEQ(emailAddr)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !password.Match(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New()
	if err := s.rdb.Set(ctx, redisKeySession(sessionID.String()), u.ID.String(), s.sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return s.issueTokens(u, sessionID)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	// The session must still be live; logout or expiry kills the refresh path.
	key := redisKeySession(claims.SessionID.String())
	if err := s.rdb.Get(ctx, key).Err(); err != nil {
		return nil, ErrSessionNotFound
	}

	u, err := s.db.User.Get(ctx, claims.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	// Reuse the session id, extend its TTL with the fresh refresh token.
	if err := s.rdb.Expire(ctx, key, s.sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("extend session: %w", err)
	}

	return s.issueTokens(u, claims.SessionID)
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *authService) issueTokens(u *repo.User, sessionID uuid.UUID) (*AuthTokens, error) {
	id := pasetotoken.Identity{
		UserID:    u.ID,
		Email:     u.Email,
		Superuser: u.IsSuperuser,
		SessionID: sessionID,
	}

	access, err := s.paseto.IssueAccess(id)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(id)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
		User:         *summarize(u),
	}, nil
}

func summarize(u *repo.User) *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
