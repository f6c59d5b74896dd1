// Package region derives the per-request region scope (a US state, or no
// restriction) from the host a request was addressed to.
package region

import (
	"net"
	"strings"

	"brewery/pkg/domain"
)

// Options configure a Resolver.
type Options struct {
	// RootDomain is the canonical domain the service runs on, e.g. "example.com".
	RootDomain string
	// Scheme is used to build RegionScope.BaseURL. Defaults to "https".
	Scheme string
	// AllowOverride enables the override token passed to Resolve. It must be
	// false in production.
	AllowOverride bool
}

// Resolver turns host names into region scopes. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	rootDomain    string
	scheme        string
	allowOverride bool
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts Options) *Resolver {
	scheme := opts.Scheme
	if scheme == "" {
		scheme = "https"
	}

	return &Resolver{
		rootDomain:    strings.ToLower(strings.Trim(opts.RootDomain, ".")),
		scheme:        scheme,
		allowOverride: opts.AllowOverride,
	}
}

// Resolve derives the scope for a request addressed to host. When overrides
// are allowed, a non-empty override that names a known state wins over the
// host. Resolve never fails: anything it does not recognize yields the
// unscoped region.
func (r *Resolver) Resolve(host, override string) domain.RegionScope {
	baseURL := r.scheme + "://" + host

	if r.allowOverride && override != "" {
		if state, ok := Lookup(override); ok {
			return domain.ScopedRegion(strings.ToLower(strings.TrimSpace(override)), state, baseURL)
		}
	}

	token, ok := r.subdomain(host)
	if !ok {
		return domain.UnscopedRegion(baseURL)
	}

	state, ok := Lookup(token)
	if !ok {
		return domain.UnscopedRegion(baseURL)
	}

	return domain.ScopedRegion(token, state, baseURL)
}

// subdomain returns the first label of host when host is a subdomain of the
// root domain.
func (r *Resolver) subdomain(host string) (string, bool) {
	hostname := strings.ToLower(host)
	if h, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = h
	}

	labels := strings.Split(hostname, ".")
	if len(labels) < 3 || r.rootDomain == "" || !strings.Contains(hostname, r.rootDomain) {
		return "", false
	}

	return labels[0], true
}
