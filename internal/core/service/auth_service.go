package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// AuthConfig tunes the mock login flow.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Latency is the artificial delay applied to every login attempt.
	Latency time.Duration
}

// AuthService implements mock login, logout and session lookup.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	activity ports.ActivityRecorder
	cfg      AuthConfig
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	activity ports.ActivityRecorder,
	cfg AuthConfig,
	log zerolog.Logger,
) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if activity == nil {
		activity = noopRecorder{}
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		activity: activity,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Login waits the configured delay, then checks email and password against
// the user table. Every credential mismatch yields ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("login rejected: unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("email", email).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.UserActive {
		return nil, domain.ErrUserInactive
	}

	now := s.now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("login: stamp last login: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("login: save session: %w", err)
	}

	token, err := s.generateToken(session)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.activity.Enqueue(ports.ActivityInput{
		Actor:  ports.ActorFromSession(session),
		Action: domain.ActionLogin,
	})
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")

	return &ports.LoginResult{Token: token, Session: session, User: user}, nil
}

// Logout removes the session. Unknown sessions are not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if session != nil {
		s.activity.Enqueue(ports.ActivityInput{
			Actor:  ports.ActorFromSession(session),
			Action: domain.ActionLogout,
		})
	}
	return nil
}

// State resolves the auth state behind a session id. Any lookup failure
// degrades to the anonymous state.
func (s *AuthService) State(ctx context.Context, sessionID string) domain.AuthState {
	if sessionID == "" {
		return domain.Anonymous()
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Warn().Err(err).Msg("session lookup failed")
		}
		return domain.Anonymous()
	}
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", session.UserID).Msg("session user lookup failed")
		return domain.Anonymous()
	}
	if user.Status != domain.UserActive {
		return domain.Anonymous()
	}
	return domain.Authenticated(user)
}

// Authenticate verifies the token signature and that its session is still live.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, domain.ErrSessionNotFound
	}
	session, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, sid)
		return nil, domain.ErrSessionNotFound
	}

	// role and status are read fresh so demotions apply to live tokens
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.sessions.Delete(ctx, sid)
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if user.Status != domain.UserActive {
		_ = s.sessions.Delete(ctx, sid)
		s.log.Info().Str("user_id", user.ID).Str("status", string(user.Status)).Msg("session revoked: user not active")
		return nil, domain.ErrUserInactive
	}

	current := *session
	current.Role = user.Role
	current.Email = user.Email
	return &current, nil
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"sub":   session.UserID,
		"email": session.Email,
		"role":  string(session.Role),
		"iat":   session.CreatedAt.Unix(),
		"exp":   session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.cfg.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.cfg.Latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
