package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contentforge/admin-api/internal/core/domain"
)

const testPassword = "password123"

func mockUsers(t *testing.T) []*domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	mk := func(id, email string, role domain.Role, status domain.UserStatus) *domain.User {
		return &domain.User{ID: id, Email: email, Name: id, Role: role, Status: status, PasswordHash: string(hash)}
	}
	return []*domain.User{
		mk("usr_001", "admin@contentforge.io", domain.RoleSuperAdmin, domain.UserActive),
		mk("usr_002", "prompts@contentforge.io", domain.RolePromptManager, domain.UserActive),
		mk("usr_003", "operator@contentforge.io", domain.RoleOperator, domain.UserActive),
		mk("usr_004", "user@contentforge.io", domain.RoleUser, domain.UserActive),
		mk("usr_006", "former@contentforge.io", domain.RoleUser, domain.UserSuspended),
	}
}

func newTestAuthService(t *testing.T, latency time.Duration) (*AuthService, *stubUserRepo, *stubSessionStore, *recordingRecorder) {
	t.Helper()
	users := newStubUserRepo(mockUsers(t)...)
	sessions := newStubSessionStore()
	rec := &recordingRecorder{}
	svc := NewAuthService(users, sessions, rec, AuthConfig{
		JWTSecret: "secret",
		TokenTTL:  time.Hour,
		Latency:   latency,
	}, zerolog.Nop())
	return svc, users, sessions, rec
}

func TestAuthService_Login_EveryMockUser(t *testing.T) {
	svc, _, sessions, _ := newTestAuthService(t, 0)

	for _, u := range mockUsers(t) {
		if u.Status != domain.UserActive {
			continue
		}
		res, err := svc.Login(context.Background(), u.Email, testPassword)
		if err != nil {
			t.Fatalf("%s: Login returned error: %v", u.Email, err)
		}
		if res.User.Role != u.Role {
			t.Fatalf("%s: expected role %s, got %s", u.Email, u.Role, res.User.Role)
		}
		if res.User.LastLoginAt == nil {
			t.Fatalf("%s: expected last login to be stamped", u.Email)
		}
		if _, ok := sessions.sessions[res.Session.ID]; !ok {
			t.Fatalf("%s: session not stored", u.Email)
		}
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	svc, _, _, rec := newTestAuthService(t, 0)

	res, err := svc.Login(context.Background(), "operator@contentforge.io", testPassword)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sid"] != res.Session.ID {
		t.Fatalf("unexpected sid claim: %v", claims["sid"])
	}
	if claims["role"] != string(domain.RoleOperator) {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if claims["sub"] != "usr_003" {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if got := rec.actions(); len(got) != 1 || got[0] != domain.ActionLogin {
		t.Fatalf("expected one login activity, got %v", got)
	}
}

func TestAuthService_Login_AppliesLatency(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t, 50*time.Millisecond)

	start := time.Now()
	if _, err := svc.Login(context.Background(), "user@contentforge.io", testPassword); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("expected at least 50ms delay, got %v", elapsed)
	}

	start = time.Now()
	if _, err := svc.Login(context.Background(), "user@contentforge.io", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("expected failed logins to be delayed too, got %v", elapsed)
	}
}

func TestAuthService_Login_InvalidCombinations(t *testing.T) {
	svc, _, sessions, _ := newTestAuthService(t, 0)

	cases := []struct{ email, password string }{
		{"admin@contentforge.io", "wrong"},
		{"admin@contentforge.io", ""},
		{"", testPassword},
		{"nobody@contentforge.io", testPassword},
		{"ADMIN@contentforge.io", testPassword},
		{" admin@contentforge.io", testPassword},
		{"admin@contentforge.io", testPassword + " "},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions.sessions))
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t, 0)

	if _, err := svc.Login(context.Background(), "former@contentforge.io", testPassword); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_Login_ContextCancelled(t *testing.T) {
	svc, _, sessions, _ := newTestAuthService(t, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Login(ctx, "admin@contentforge.io", testPassword)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("login did not honour cancellation")
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected no session after cancellation")
	}
}

func TestAuthService_Logout_AlwaysAnonymous(t *testing.T) {
	svc, _, _, rec := newTestAuthService(t, 0)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@contentforge.io", testPassword)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if state := svc.State(ctx, res.Session.ID); !state.IsAuthenticated {
		t.Fatalf("expected authenticated state before logout")
	}

	for _, sid := range []string{res.Session.ID, res.Session.ID, "unknown", ""} {
		if err := svc.Logout(ctx, sid); err != nil {
			t.Fatalf("Logout(%q) returned error: %v", sid, err)
		}
		state := svc.State(ctx, sid)
		if state.IsAuthenticated || state.User != nil || state.IsLoading {
			t.Fatalf("Logout(%q): expected anonymous state, got %+v", sid, state)
		}
	}

	if got := rec.actions(); len(got) != 2 || got[1] != domain.ActionLogout {
		t.Fatalf("expected login then one logout activity, got %v", got)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t, 0)
	ctx := context.Background()

	res, err := svc.Login(ctx, "prompts@contentforge.io", testPassword)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	session, err := svc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if session.Role != domain.RolePromptManager {
		t.Fatalf("unexpected role %s", session.Role)
	}

	if _, err := svc.Authenticate(ctx, "not-a-token"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for garbage, got %v", err)
	}

	if err := svc.Logout(ctx, session.ID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.Authenticate(ctx, res.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected revoked token to be rejected, got %v", err)
	}
}

func TestAuthService_Authenticate_WrongSecret(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t, 0)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": "x", "exp": time.Now().Add(time.Hour).Unix()})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), signed); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_State_DegradesOnStoreError(t *testing.T) {
	svc, _, sessions, _ := newTestAuthService(t, 0)
	sessions.getErr = errors.New("redis down")

	state := svc.State(context.Background(), "sess")
	if state.IsAuthenticated {
		t.Fatalf("expected anonymous state on store failure")
	}
}

func TestAuthService_Authenticate_FollowsUserChanges(t *testing.T) {
	svc, users, sessions, _ := newTestAuthService(t, 0)
	ctx := context.Background()

	res, err := svc.Login(ctx, "operator@contentforge.io", testPassword)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	demoted, _ := users.FindByID(ctx, "usr_003")
	demoted.Role = domain.RoleUser
	if err := users.Update(ctx, demoted); err != nil {
		t.Fatalf("update user: %v", err)
	}

	session, err := svc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if session.Role != domain.RoleUser {
		t.Fatalf("expected demoted role %s, got %s", domain.RoleUser, session.Role)
	}

	demoted.Status = domain.UserSuspended
	if err := users.Update(ctx, demoted); err != nil {
		t.Fatalf("update user: %v", err)
	}
	if _, err := svc.Authenticate(ctx, res.Token); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive for suspended user, got %v", err)
	}
	if _, ok := sessions.sessions[res.Session.ID]; ok {
		t.Fatal("expected the suspended user's session to be deleted")
	}
	if state := svc.State(ctx, res.Session.ID); state.IsAuthenticated {
		t.Fatal("expected anonymous state after suspension")
	}
}
