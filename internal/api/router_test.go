package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contentforge/admin-api/internal/api/handler"
	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/service"
	"github.com/contentforge/admin-api/internal/infrastructure/db/memory"
	"github.com/contentforge/admin-api/internal/infrastructure/schema"
	"github.com/contentforge/admin-api/internal/infrastructure/seed"
)

const routerTestPassword = "password123"

var accounts = map[domain.Role]string{
	domain.RoleUser:          "user@contentforge.io",
	domain.RoleOperator:      "operator@contentforge.io",
	domain.RolePromptManager: "prompts@contentforge.io",
	domain.RoleSuperAdmin:    "admin@contentforge.io",
}

// newTestRouter wires the full router over freshly seeded memory stores and
// returns a bearer token per role.
func newTestRouter(t *testing.T) (*echo.Echo, map[domain.Role]string) {
	t.Helper()
	data, err := seed.Load(seed.Options{Password: routerTestPassword, BcryptCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	validator, err := schema.NewSettingsValidator()
	if err != nil {
		t.Fatalf("settings validator: %v", err)
	}

	log := zerolog.Nop()
	users := memory.NewUserRepository(data.Users)
	tasks := memory.NewTaskRepository(data.Tasks)
	blog := memory.NewBlogRepository(data.BlogPosts)
	keywords := memory.NewKeywordRepository(data.Keywords)
	auth := service.NewAuthService(users, memory.NewSessionStore(), nil, service.AuthConfig{JWTSecret: "router-test-secret"}, log)

	svc := Services{
		Auth:       auth,
		Navigation: service.NewNavigationService(),
		Users:      service.NewUserService(users, nil, log),
		Prompts:    service.NewPromptService(memory.NewPromptRepository(data.Prompts), nil, log),
		Catalog:    service.NewCatalogService(memory.NewProductRepository(data.Products), keywords, blog, nil, log),
		Tasks:      service.NewTaskService(tasks),
		Overview:   service.NewOverviewService(users, tasks, blog, keywords),
		Settings:   service.NewSettingsService(memory.NewSettingsStore(), validator, nil, log),
		Activity:   service.NewActivityService(memory.NewActivityRepository(100), log),
	}
	reg := prometheus.NewRegistry()
	e := NewRouter(svc, map[string]handler.Check{}, Metrics{Registerer: reg, Gatherer: reg}, log)

	tokens := make(map[domain.Role]string, len(accounts))
	for role, email := range accounts {
		res, err := auth.Login(context.Background(), email, routerTestPassword)
		if err != nil {
			t.Fatalf("login %s: %v", email, err)
		}
		tokens[role] = res.Token
	}
	return e, tokens
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RoleGates(t *testing.T) {
	e, tokens := newTestRouter(t)
	const anonymous = domain.Role("")

	tests := []struct {
		method string
		path   string
		role   domain.Role
		want   int
	}{
		{http.MethodGet, "/health", anonymous, http.StatusOK},
		{http.MethodGet, "/health/ready", anonymous, http.StatusOK},
		{http.MethodGet, "/auth/session", anonymous, http.StatusOK},
		{http.MethodGet, "/v1/navigation", anonymous, http.StatusOK},

		{http.MethodGet, "/v1/me", anonymous, http.StatusUnauthorized},
		{http.MethodGet, "/v1/me", domain.RoleUser, http.StatusOK},
		{http.MethodGet, "/v1/tasks", anonymous, http.StatusUnauthorized},
		{http.MethodGet, "/v1/tasks", domain.RoleUser, http.StatusOK},

		{http.MethodGet, "/v1/admin/overview", anonymous, http.StatusUnauthorized},
		{http.MethodGet, "/v1/admin/overview", domain.RoleUser, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/overview", domain.RoleOperator, http.StatusOK},
		{http.MethodGet, "/v1/admin/tasks/stats", domain.RoleUser, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/tasks/stats", domain.RoleOperator, http.StatusOK},
		{http.MethodGet, "/v1/admin/keywords", domain.RoleOperator, http.StatusOK},
		{http.MethodGet, "/v1/admin/blog-posts", domain.RoleOperator, http.StatusOK},
		{http.MethodGet, "/v1/admin/blog-posts/summary", domain.RoleOperator, http.StatusOK},
		{http.MethodGet, "/v1/admin/products", domain.RoleUser, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/products", domain.RoleOperator, http.StatusOK},
		{http.MethodPost, "/v1/admin/products", domain.RoleOperator, http.StatusForbidden},
		{http.MethodPost, "/v1/admin/products", domain.RolePromptManager, http.StatusForbidden},

		{http.MethodGet, "/v1/admin/prompts", domain.RoleOperator, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/prompts", domain.RolePromptManager, http.StatusOK},
		{http.MethodGet, "/v1/admin/prompts", domain.RoleSuperAdmin, http.StatusOK},
		{http.MethodGet, "/v1/admin/prompts/blog_article/versions", domain.RoleOperator, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/prompts/blog_article/versions", domain.RolePromptManager, http.StatusOK},
		{http.MethodPost, "/v1/admin/prompts/versions/prm_blog_1/activate", domain.RoleOperator, http.StatusForbidden},

		{http.MethodGet, "/v1/admin/users", anonymous, http.StatusUnauthorized},
		{http.MethodGet, "/v1/admin/users", domain.RoleOperator, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/users", domain.RolePromptManager, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/users", domain.RoleSuperAdmin, http.StatusOK},
		{http.MethodPatch, "/v1/admin/users/usr_004", domain.RoleOperator, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/settings", domain.RolePromptManager, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/settings", domain.RoleSuperAdmin, http.StatusOK},
		{http.MethodGet, "/v1/admin/activity", domain.RoleOperator, http.StatusForbidden},
		{http.MethodGet, "/v1/admin/activity", domain.RoleSuperAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		name := tt.method + " " + tt.path + " as " + string(tt.role)
		if tt.role == anonymous {
			name = tt.method + " " + tt.path + " anonymous"
		}
		t.Run(name, func(t *testing.T) {
			rec := do(e, tt.method, tt.path, tokens[tt.role], "")
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
			if tt.want == http.StatusForbidden && !strings.Contains(rec.Body.String(), `"error"`) {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestRouter_InvalidTokenIsUnauthorized(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/v1/admin/overview", "not-a-jwt", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRouter_DemotionAppliesToLiveToken(t *testing.T) {
	e, tokens := newTestRouter(t)
	operatorToken := tokens[domain.RoleOperator]

	if rec := do(e, http.MethodGet, "/v1/admin/overview", operatorToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("before demotion: status = %d, want 200", rec.Code)
	}

	rec := do(e, http.MethodPatch, "/v1/admin/users/usr_003", tokens[domain.RoleSuperAdmin], `{"role":"user"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("demote: status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if rec := do(e, http.MethodGet, "/v1/admin/overview", operatorToken, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("after demotion: status = %d, want 403", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/me", operatorToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("after demotion /v1/me: status = %d, want 200", rec.Code)
	}

	rec = do(e, http.MethodPatch, "/v1/admin/users/usr_003", tokens[domain.RoleSuperAdmin], `{"status":"suspended"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("suspend: status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if rec := do(e, http.MethodGet, "/v1/me", operatorToken, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("after suspension: status = %d, want 401", rec.Code)
	}

	rec = do(e, http.MethodGet, "/auth/session", operatorToken, "")
	var state domain.AuthState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if state.IsAuthenticated {
		t.Fatalf("expected anonymous state after suspension, got %+v", state)
	}
}

func TestRouter_HugePageReturnsEmptyList(t *testing.T) {
	e, tokens := newTestRouter(t)

	rec := do(e, http.MethodGet, "/v1/admin/users?page=92233720368547760&limit=100", tokens[domain.RoleSuperAdmin], "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 0 || body.Total != 6 {
		t.Fatalf("expected empty page of 6 users, got %d items, total %d", len(body.Items), body.Total)
	}
}

func TestRouter_MetricsUseInjectedRegistry(t *testing.T) {
	// A second router in the same process registers on its own registry.
	e, _ := newTestRouter(t)
	other, _ := newTestRouter(t)

	do(other, http.MethodGet, "/v1/navigation", "", "")
	rec := do(other, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "content_admin_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}

	if rec := do(e, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("first router health status = %d", rec.Code)
	}
}
