package identity

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubVerifier map[string]string

func (v stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	uid, ok := v[idToken]
	if !ok {
		return nil, errors.New("ID token has invalid signature")
	}
	return &auth.Token{UID: uid}, nil
}

type stubLookup struct {
	users map[string]*models.User
	err   error
}

func (l stubLookup) GetUserByFirebaseUID(_ context.Context, firebaseUID string) (*models.User, error) {
	if l.err != nil {
		return nil, l.err
	}
	user, ok := l.users[firebaseUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func TestFirebaseProvider_ResolveIdentity(t *testing.T) {
	verifier := stubVerifier{"good": "fb-1", "orphan": "fb-2"}
	lookup := stubLookup{users: map[string]*models.User{"fb-1": {ID: 7}}}
	p := NewFirebaseProvider(verifier, lookup)
	ctx := context.Background()

	userID, err := p.ResolveIdentity(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "7", userID)

	_, err = p.ResolveIdentity(ctx, "forged")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = p.ResolveIdentity(ctx, "orphan")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestFirebaseProvider_LookupFailureIsNotACredentialError(t *testing.T) {
	dbErr := errors.New("connection refused")
	p := NewFirebaseProvider(stubVerifier{"good": "fb-1"}, stubLookup{err: dbErr})

	_, err := p.ResolveIdentity(context.Background(), "good")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredential)
}
