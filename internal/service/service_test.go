package service

import (
	"context"
	"testing"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/require"
)

// fixture wires services against a real in-memory store; only the external
// collaborators are faked per test.
type fixture struct {
	store *store.Store

	demo  models.User
	admin models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := store.NewStore(store.SeedConfig{}, logger.Nop())
	ctx := context.Background()

	demo, err := s.GetUserByOpenID(ctx, "demo_user")
	require.NoError(t, err)

	admin, err := s.UpsertUser(ctx, models.UpsertUser{OpenID: "admin_1", Name: "Admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	return &fixture{store: s, demo: demo, admin: admin}
}

// as returns a context carrying the given caller.
func (f *fixture) as(u models.User) context.Context {
	return utils.WithCaller(context.Background(), u)
}

// anon returns a context with no resolved caller.
func (f *fixture) anon() context.Context {
	return context.Background()
}
