// Package domaingate classifies email addresses as professional or
// free/personal based on a domain denylist snapshot.
package domaingate

import (
	"log/slog"
	"strings"
)

// Set holds lower-cased denied domains.
type Set map[string]struct{}

// ParseList builds a Set from a newline-delimited plain-text list.
// Blank lines and surrounding whitespace are ignored.
func ParseList(text string) Set {
	set := make(Set)
	for _, line := range strings.Split(text, "\n") {
		domain := strings.ToLower(strings.TrimSpace(line))
		if domain == "" {
			continue
		}
		set[domain] = struct{}{}
	}
	return set
}

// Contains reports whether domain (already lower-cased) is denied.
func (s Set) Contains(domain string) bool {
	_, ok := s[domain]
	return ok
}

// Gate answers the professional-address question against one snapshot.
// A Gate built from a nil Set is degraded: it answers permissively for any
// address that has a domain at all, because blocking every submission over a
// transient feed failure is worse than letting a personal address through.
type Gate struct {
	set    Set
	logger *slog.Logger
}

// NewGate wraps a snapshot. Pass nil when the denylist could not be loaded.
func NewGate(set Set, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{set: set, logger: logger}
}

// Degraded reports whether the gate is running without a denylist.
func (g *Gate) Degraded() bool { return g.set == nil }

// IsProfessional returns false for addresses whose domain is on the
// denylist, and for addresses with no extractable domain. When the denylist
// never loaded it returns true and logs the degradation once per call.
func (g *Gate) IsProfessional(email string) bool {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])

	if g.set == nil {
		g.logger.Warn("denylist unavailable, accepting address unchecked", "domain", domain)
		return true
	}
	return !g.set.Contains(domain)
}
