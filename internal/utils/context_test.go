package utils

import (
	"context"
	"testing"

	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCallerFromContext_Present(t *testing.T) {
	caller := models.User{ID: 42, OpenID: "demo_user", Role: models.RoleAdmin}
	ctx := WithCaller(context.Background(), caller)

	got, ok := GetCallerFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, caller, got)
}

func TestGetCallerFromContext_Absent(t *testing.T) {
	_, ok := GetCallerFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "not-a-user")
	_, ok := GetCallerFromContext(ctx)
	assert.False(t, ok)
}
