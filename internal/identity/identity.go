// Package identity bridges to the external identity service that proves
// control of an email address through a one-time link. The service mails the
// link; visiting it returns the browser to our confirmation URL carrying a
// short-lived access/refresh token pair.
//
// Possession of the link is the only identity proof: there are no passwords
// to store. The cost is that confirmation stays replayable until the staging
// rows are gone, which is why the confirmation flow carries its own
// duplicate and already-published checks.
package identity

import "context"

// Identity is the authenticated result of a token exchange.
type Identity struct {
	Subject string
	Email   string
}

// Verifier is what the salary service needs from the identity bridge.
type Verifier interface {
	// RequestVerification triggers out-of-band delivery of a one-time link
	// to email. The link returns the browser to returnURL.
	RequestVerification(ctx context.Context, email, returnURL string) error

	// EstablishSession exchanges the token pair carried back by the link
	// for the verified identity. Fails when the backend rejects the pair
	// (expired, malformed, reused).
	EstablishSession(ctx context.Context, accessToken, refreshToken string) (Identity, error)
}
