package identity

import (
	"context"
	"strings"
	"sync"

	dErrors "salaire/pkg/domain-errors"
)

// InMemoryVerifier is the bridge stand-in for tests and dev mode. Requested
// verifications are recorded, and sessions resolve for any token of the form
// "valid:<email>".
type InMemoryVerifier struct {
	mu        sync.Mutex
	requested []string
}

func NewMemoryVerifier() *InMemoryVerifier {
	return &InMemoryVerifier{}
}

func (v *InMemoryVerifier) RequestVerification(_ context.Context, email, _ string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.requested = append(v.requested, email)
	return nil
}

func (v *InMemoryVerifier) EstablishSession(_ context.Context, accessToken, _ string) (Identity, error) {
	email, ok := strings.CutPrefix(accessToken, "valid:")
	if !ok || email == "" {
		return Identity{}, dErrors.New(dErrors.CodeUnauthorized, "identity service rejected token pair")
	}
	return Identity{Subject: email, Email: email}, nil
}

// Requested returns the emails a verification link was requested for, in
// order.
func (v *InMemoryVerifier) Requested() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.requested...)
}
