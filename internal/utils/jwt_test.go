package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "lifehub-test"
	testSignKey = "test-sign-key"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken(testIssuer, "demo_user", time.Hour, testSignKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "demo_user", token.OpenID)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		openID   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", openID: "u", duration: time.Hour, signKey: "k"},
		{name: "empty openID", issuer: "i", openID: "", duration: time.Hour, signKey: "k"},
		{name: "zero duration", issuer: "i", openID: "u", duration: 0, signKey: "k"},
		{name: "empty sign key", issuer: "i", openID: "u", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.openID, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseSessionToken_RoundTrip(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseSessionToken(generated.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.OpenID)
}

func TestValidateAndParseSessionToken_WrongKey(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(generated.SignedString, "another-key", testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(generated.SignedString, testSignKey, "other-issuer")
	require.Error(t, err)
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, "alice", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(generated.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer tok", want: "tok"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "extra parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
