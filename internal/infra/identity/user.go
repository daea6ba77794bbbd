package identity

import (
	"context"

	"wildhaven/internal/domain/session"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"
)

// UserService implements the User port over the identity provider session.
// Profile data lives with the provider; this deployment only reads the
// projection. Signup and profile mutation belong to the provider's own flows.
type UserService struct {
	source Source
}

func NewUserService(source Source) *UserService {
	return &UserService{source: source}
}

var _ usecase.UserService = (*UserService)(nil)

func (s *UserService) Signup(_ context.Context, _ session.SignupInput) result.Result[session.UserProfile] {
	return result.Err[session.UserProfile](result.NotImplemented("email/password signup not supported; the identity provider owns registration"))
}

func (s *UserService) GetCurrentUser(ctx context.Context) result.Result[*session.UserProfile] {
	providerSession, err := s.source.CurrentSession(ctx)
	if err != nil {
		return result.Err[*session.UserProfile](result.FromException(err, result.CodeUserLoadError, "errors.userLoad", 500))
	}
	if providerSession == nil {
		return result.Ok[*session.UserProfile](nil)
	}
	profile := toUserProfile(providerSession.User)
	return result.Ok(&profile)
}

func (s *UserService) UpdateCurrentUser(_ context.Context, _ session.UpdateUserInput) result.Result[session.UserProfile] {
	return result.Err[session.UserProfile](result.NotImplemented("profile updates are handled by the identity provider"))
}
