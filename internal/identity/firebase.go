package identity

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/ItsBhatt/devConnector/internal/repositories"
	"gorm.io/gorm"
)

// TokenVerifier is the part of *auth.Client used to check Firebase ID tokens
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// UserLookup finds the local account linked to a Firebase UID
type UserLookup interface {
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error)
}

// FirebaseProvider accepts Firebase ID tokens. The token's UID must already be
// linked to a local user (see the firebase-login endpoint).
type FirebaseProvider struct {
	verifier TokenVerifier
	users    UserLookup
}

// NewFirebaseProvider creates a FirebaseProvider
func NewFirebaseProvider(verifier TokenVerifier, users UserLookup) *FirebaseProvider {
	return &FirebaseProvider{verifier: verifier, users: users}
}

// ResolveIdentity verifies the ID token and maps its UID to the local user ID
func (p *FirebaseProvider) ResolveIdentity(ctx context.Context, credential string) (string, error) {
	token, err := p.verifier.VerifyIDToken(ctx, credential)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	user, err := p.users.GetUserByFirebaseUID(ctx, token.UID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: no account linked to firebase user", ErrInvalidCredential)
		}
		return "", err
	}
	return repositories.FormatUserID(user.ID), nil
}
