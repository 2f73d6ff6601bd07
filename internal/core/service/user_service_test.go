package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
	"github.com/contentforge/admin-api/internal/infrastructure/db/memory"
)

func newTestUserService(t *testing.T) (*UserService, *recordingRecorder) {
	t.Helper()
	rec := &recordingRecorder{}
	repo := memory.NewUserRepository(loadFixtures(t).Users)
	return NewUserService(repo, rec, zerolog.Nop()), rec
}

func ptr[T any](v T) *T { return &v }

func TestUserService_List(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	page, err := svc.List(ctx, ports.UserFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 6 || page.Limit != ports.DefaultPageLimit {
		t.Fatalf("unexpected page: total=%d limit=%d", page.Total, page.Limit)
	}

	page, err = svc.List(ctx, ports.UserFilter{Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected 3 plain users, got %d", page.Total)
	}

	if _, err := svc.List(ctx, ports.UserFilter{Role: "root"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	svc, rec := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.Update(ctx, "usr_004", ports.UserUpdate{
		Role:         ptr(domain.RoleOperator),
		TokenBalance: ptr(int64(250)),
	}, admin)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if u.Role != domain.RoleOperator || u.TokenBalance != 250 {
		t.Fatalf("update not applied: %+v", u)
	}

	reloaded, err := svc.Get(ctx, "usr_004")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if reloaded.Role != domain.RoleOperator {
		t.Fatalf("update not persisted: %+v", reloaded)
	}
	if got := rec.actions(); len(got) != 1 || got[0] != domain.ActionUserUpdated {
		t.Fatalf("unexpected activity %v", got)
	}
}

func TestUserService_Update_Rejects(t *testing.T) {
	svc, rec := newTestUserService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		id   string
		upd  ports.UserUpdate
		want error
	}{
		{"unknown role", "usr_004", ports.UserUpdate{Role: ptr(domain.Role("root"))}, domain.ErrInvalidRole},
		{"negative balance", "usr_004", ports.UserUpdate{TokenBalance: ptr(int64(-1))}, domain.ErrValidation},
		{"blank name", "usr_004", ports.UserUpdate{Name: ptr("  ")}, domain.ErrValidation},
		{"unknown status", "usr_004", ports.UserUpdate{Status: ptr(domain.UserStatus("banned"))}, domain.ErrValidation},
		{"missing user", "usr_999", ports.UserUpdate{Name: ptr("Ghost")}, domain.ErrUserNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Update(ctx, tc.id, tc.upd, admin); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if got := rec.actions(); len(got) != 0 {
		t.Fatalf("rejected updates must not be recorded, got %v", got)
	}
}
