// Package seed loads the embedded mock records every store starts from.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/contentforge/admin-api/internal/core/domain"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Data is the decoded fixture set.
type Data struct {
	Users     []*domain.User
	Prompts   []*domain.PromptVersion
	Products  []*domain.Product
	Keywords  []*domain.Keyword
	BlogPosts []*domain.BlogPost
	Tasks     []*domain.GenerationTask
}

type userFixture struct {
	ID           string    `yaml:"id"`
	Email        string    `yaml:"email"`
	Name         string    `yaml:"name"`
	Role         string    `yaml:"role"`
	TokenBalance int64     `yaml:"token_balance"`
	Status       string    `yaml:"status"`
	CreatedAt    time.Time `yaml:"created_at"`
}

type promptFixture struct {
	ID           string    `yaml:"id"`
	PromptType   string    `yaml:"prompt_type"`
	Version      int       `yaml:"version"`
	Title        string    `yaml:"title"`
	SystemPrompt string    `yaml:"system_prompt"`
	UserTemplate string    `yaml:"user_template"`
	Model        string    `yaml:"model"`
	Temperature  float64   `yaml:"temperature"`
	MaxTokens    int       `yaml:"max_tokens"`
	Status       string    `yaml:"status"`
	Notes        string    `yaml:"notes"`
	CreatedBy    string    `yaml:"created_by"`
	CreatedAt    time.Time `yaml:"created_at"`
}

type fixtures struct {
	Users     []userFixture            `yaml:"users"`
	Prompts   []promptFixture          `yaml:"prompts"`
	Products  []*domain.Product        `yaml:"products"`
	Keywords  []*domain.Keyword        `yaml:"keywords"`
	BlogPosts []*domain.BlogPost       `yaml:"blog_posts"`
	Tasks     []*domain.GenerationTask `yaml:"tasks"`
}

// Options controls how fixtures are materialised.
type Options struct {
	// Password is the shared mock password every seeded user logs in with.
	Password string
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// Load decodes the embedded fixtures and hashes the mock password once for
// every user.
func Load(opts Options) (*Data, error) {
	return parse(fixturesYAML, opts)
}

func parse(raw []byte, opts Options) (*Data, error) {
	if opts.Password == "" {
		return nil, fmt.Errorf("seed: mock password is required")
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	var fx fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("seed: decode fixtures: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("seed: hash mock password: %w", err)
	}

	data := &Data{
		Products:  fx.Products,
		Keywords:  fx.Keywords,
		BlogPosts: fx.BlogPosts,
		Tasks:     fx.Tasks,
	}

	seenEmail := make(map[string]bool, len(fx.Users))
	for _, u := range fx.Users {
		role, err := domain.ParseRole(u.Role)
		if err != nil {
			return nil, fmt.Errorf("seed: user %s: %w", u.ID, err)
		}
		if seenEmail[u.Email] {
			return nil, fmt.Errorf("seed: duplicate user email %s", u.Email)
		}
		seenEmail[u.Email] = true

		status := domain.UserStatus(u.Status)
		if status == "" {
			status = domain.UserActive
		}
		data.Users = append(data.Users, &domain.User{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         role,
			TokenBalance: u.TokenBalance,
			Status:       status,
			PasswordHash: string(hash),
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.CreatedAt,
		})
	}

	activeByType := make(map[domain.PromptType]string)
	for _, p := range fx.Prompts {
		t := domain.PromptType(p.PromptType)
		if !t.Valid() {
			return nil, fmt.Errorf("seed: prompt %s: unknown type %q", p.ID, p.PromptType)
		}
		status := domain.VersionStatus(p.Status)
		if status == domain.VersionActive {
			if other, dup := activeByType[t]; dup {
				return nil, fmt.Errorf("seed: prompt type %s has two active versions (%s, %s)", t, other, p.ID)
			}
			activeByType[t] = p.ID
		}
		data.Prompts = append(data.Prompts, &domain.PromptVersion{
			ID:           p.ID,
			PromptType:   t,
			Version:      p.Version,
			Title:        p.Title,
			SystemPrompt: p.SystemPrompt,
			UserTemplate: p.UserTemplate,
			Model:        p.Model,
			Temperature:  p.Temperature,
			MaxTokens:    p.MaxTokens,
			Status:       status,
			Notes:        p.Notes,
			CreatedBy:    p.CreatedBy,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.CreatedAt,
		})
	}

	return data, nil
}
