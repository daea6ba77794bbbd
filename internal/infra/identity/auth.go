package identity

import (
	"context"

	"wildhaven/internal/domain/session"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"
)

// AuthService implements the Auth port over the identity provider session.
// Email/password login is not something the provider supports, so Login is a
// first-class NOT_IMPLEMENTED, not a crash.
type AuthService struct {
	source Source
}

func NewAuthService(source Source) *AuthService {
	return &AuthService{source: source}
}

var _ usecase.AuthService = (*AuthService)(nil)

func (s *AuthService) Login(_ context.Context, _ session.LoginInput) result.Result[session.AuthSession] {
	return result.Err[session.AuthSession](result.NotImplemented("email/password login not supported; the identity provider owns sign-in"))
}

func (s *AuthService) Logout(ctx context.Context) result.Result[result.Unit] {
	if err := s.source.SignOut(ctx); err != nil {
		return result.Err[result.Unit](result.FromException(err, result.CodeSessionError, "errors.session", 500))
	}
	return result.Ok(result.Unit{})
}

func (s *AuthService) GetSession(ctx context.Context) result.Result[*session.AuthSession] {
	providerSession, err := s.source.CurrentSession(ctx)
	if err != nil {
		return result.Err[*session.AuthSession](result.FromException(err, result.CodeSessionError, "errors.session", 500))
	}
	if providerSession == nil {
		return result.Ok[*session.AuthSession](nil)
	}

	mapped := &session.AuthSession{
		// The provider never exposes tokens to this core; placeholders keep
		// the session shape total.
		Tokens: session.Tokens{
			AccessToken:  "",
			RefreshToken: "",
			TokenType:    "bearer",
		},
		User: toUserProfile(providerSession.User),
	}
	return result.Ok(mapped)
}

func toUserProfile(u SessionUser) session.UserProfile {
	return session.UserProfile{
		ID:       u.Email,
		Email:    u.Email,
		Role:     "authenticated",
		FullName: u.Name,
		Avatar:   u.Image,
	}
}
