package companies

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sustainalens/internal/adapters/memory"
	"sustainalens/internal/ports"
)

func TestRegistrableDomain(t *testing.T) {
	cases := map[string]string{
		"https://www.example.co.uk/about": "example.co.uk",
		"investors.Acme.com":              "acme.com",
		"http://localhost:8080":           "localhost",
	}
	for in, want := range cases {
		got, err := RegistrableDomain(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := RegistrableDomain("https://")
	assert.Error(t, err)
}

func TestRegisterIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := New(memory.New(), zap.NewNop())

	first, err := svc.Register(ctx, ports.CompanyInput{ExternalID: " acme ", Name: "Acme", Website: "www.acme.com"})
	require.NoError(t, err)
	require.NotNil(t, first.RegistrableDomain)
	assert.Equal(t, "acme.com", *first.RegistrableDomain)

	second, err := svc.Register(ctx, ports.CompanyInput{ExternalID: "acme", Name: "Acme Corp", Sector: "Industrials"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := svc.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "Industrials", got.Sector)
}

func TestRegisterRequiresID(t *testing.T) {
	_, err := New(memory.New(), zap.NewNop()).Register(context.Background(), ports.CompanyInput{Name: "Nameless"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrInvalidInput))
}

func TestGetUnknownCompany(t *testing.T) {
	_, err := New(memory.New(), zap.NewNop()).Get(context.Background(), "ghost")
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}
