package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/contentforge/admin-api/internal/infrastructure/seed"
)

func loadFixtures(t *testing.T) *seed.Data {
	t.Helper()
	data, err := seed.Load(seed.Options{Password: testPassword, BcryptCost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	return data
}
