// Package identity turns request credentials into the user IDs the post
// aggregate works with. The aggregate trusts whatever a Provider returns.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidCredential indicates the credential is malformed, expired or unknown
var ErrInvalidCredential = errors.New("invalid or expired credential")

// Provider resolves an opaque credential to a stable user ID
type Provider interface {
	ResolveIdentity(ctx context.Context, credential string) (string, error)
}
