package region_test

import (
	"testing"

	"brewery/internal/region"
	"brewery/pkg/domain"

	"github.com/stretchr/testify/require"
)

func requireUnscoped(t *testing.T, scope domain.RegionScope) {
	t.Helper()

	require.True(t, scope.IsMultiState)
	require.Nil(t, scope.Subdomain)
	require.Nil(t, scope.StateName)
	require.Nil(t, scope.StateAbbrev)
	require.False(t, scope.Scoped())
}

func requireScoped(t *testing.T, scope domain.RegionScope, name, abbrev string) {
	t.Helper()

	require.False(t, scope.IsMultiState)
	require.NotNil(t, scope.Subdomain)
	require.NotNil(t, scope.StateName)
	require.NotNil(t, scope.StateAbbrev)
	require.Equal(t, name, *scope.StateName)
	require.Equal(t, abbrev, *scope.StateAbbrev)
	require.True(t, scope.Scoped())
}

func TestResolver_Resolve(t *testing.T) {
	r := region.NewResolver(region.Options{RootDomain: "example.com"})

	tests := []struct {
		name   string
		host   string
		state  string
		abbrev string
	}{
		{name: "state subdomain", host: "ohio.example.com", state: "Ohio", abbrev: "OH"},
		{name: "upper case subdomain", host: "OHIO.Example.com", state: "Ohio", abbrev: "OH"},
		{name: "with port", host: "texas.example.com:8443", state: "Texas", abbrev: "TX"},
		{name: "multi word state", host: "newyork.example.com", state: "New York", abbrev: "NY"},
		{name: "root domain", host: "example.com"},
		{name: "unknown subdomain", host: "unknownplace.example.com"},
		{name: "www", host: "www.example.com"},
		{name: "foreign host", host: "ohio.other.org"},
		{name: "empty host", host: ""},
		{name: "localhost", host: "localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := r.Resolve(tt.host, "")
			if tt.state == "" {
				requireUnscoped(t, scope)

				return
			}

			requireScoped(t, scope, tt.state, tt.abbrev)
		})
	}
}

func TestResolver_BaseURL(t *testing.T) {
	r := region.NewResolver(region.Options{RootDomain: "example.com"})
	require.Equal(t, "https://ohio.example.com", r.Resolve("ohio.example.com", "").BaseURL)
	require.Equal(t, "https://example.com", r.Resolve("example.com", "").BaseURL)

	local := region.NewResolver(region.Options{RootDomain: "example.com", Scheme: "http"})
	require.Equal(t, "http://localhost:8080", local.Resolve("localhost:8080", "").BaseURL)
}

func TestResolver_Override(t *testing.T) {
	dev := region.NewResolver(region.Options{RootDomain: "example.com", AllowOverride: true})

	// override forces scoped mode without a real subdomain
	requireScoped(t, dev.Resolve("localhost:8080", "michigan"), "Michigan", "MI")
	// override wins over the host
	requireScoped(t, dev.Resolve("ohio.example.com", "Oregon"), "Oregon", "OR")
	// unknown override falls back to the host
	requireScoped(t, dev.Resolve("ohio.example.com", "atlantis"), "Ohio", "OH")
	requireUnscoped(t, dev.Resolve("localhost", "atlantis"))

	prod := region.NewResolver(region.Options{RootDomain: "example.com"})
	requireUnscoped(t, prod.Resolve("localhost:8080", "michigan"))
	requireScoped(t, prod.Resolve("ohio.example.com", "oregon"), "Ohio", "OH")
}

func TestStates(t *testing.T) {
	table := region.States()
	require.Len(t, table, 25)

	// the returned map is a copy
	delete(table, "ohio")
	_, ok := region.Lookup("ohio")
	require.True(t, ok)

	s, ok := region.Lookup("  Vermont ")
	require.True(t, ok)
	require.Equal(t, domain.State{Name: "Vermont", Abbrev: "VT"}, s)

	_, ok = region.Lookup("")
	require.False(t, ok)
}
