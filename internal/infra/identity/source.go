// Package identity adapts the external identity provider's session projection
// to the Auth and User ports. The provider's protocol (OAuth handshake, token
// refresh) is outside this core; only the session shape it yields is consumed
// here.
package identity

import "context"

// SessionUser is the session projection the identity provider exposes. Name
// and Image may be absent.
type SessionUser struct {
	Email string
	Name  string
	Image string
}

type Session struct {
	User SessionUser
}

// Source yields the provider session for the current request. A nil session
// means signed out, not an error.
type Source interface {
	CurrentSession(ctx context.Context) (*Session, error)
	SignOut(ctx context.Context) error
}

// UnauthenticatedSource is the null source: always signed out. Used by
// binaries that run without an identity provider attached.
type UnauthenticatedSource struct{}

func (UnauthenticatedSource) CurrentSession(context.Context) (*Session, error) {
	return nil, nil
}

func (UnauthenticatedSource) SignOut(context.Context) error {
	return nil
}
