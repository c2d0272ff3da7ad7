package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		config ProviderConfig
	}{
		{"missing client id", ProviderConfig{ClientSecret: "s", RedirectURL: "r", IssuerURL: "i"}},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", IssuerURL: "i"}},
		{"missing redirect url", ProviderConfig{ClientID: "c", ClientSecret: "s", IssuerURL: "i"}},
		{"missing issuer url", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.config)
			assert.Error(t, err)
		})
	}
}

func TestGenerateRandomString(t *testing.T) {
	seen := make(map[string]bool)
	for range 10 {
		s, err := generateRandomString(32)
		require.NoError(t, err)
		assert.Len(t, s, 32)
		assert.False(t, seen[s], "random strings must not repeat")
		seen[s] = true
	}

	empty, err := generateRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
