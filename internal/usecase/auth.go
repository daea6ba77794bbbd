package usecase

import (
	"context"

	"wildhaven/internal/domain/session"
	"wildhaven/internal/events"
	"wildhaven/internal/pkg/result"
)

type AuthUseCases interface {
	GetSession(ctx context.Context) result.Result[*session.AuthSession]
	Login(ctx context.Context, input session.LoginInput) result.Result[session.AuthSession]
	// SignOut delegates to the provider and, once the sign-out completes,
	// publishes a LoggedOut event for the presentation layer to react to.
	SignOut(ctx context.Context) result.Result[result.Unit]
}

type UserUseCases interface {
	GetCurrentUser(ctx context.Context) result.Result[*session.UserProfile]
	Signup(ctx context.Context, input session.SignupInput) result.Result[session.UserProfile]
	UpdateCurrentUser(ctx context.Context, input session.UpdateUserInput) result.Result[session.UserProfile]
}

type authUseCasesImpl struct {
	auth AuthService
	bus  *events.Bus
}

func NewAuthUseCases(auth AuthService, bus *events.Bus) AuthUseCases {
	return &authUseCasesImpl{auth: auth, bus: bus}
}

func (u *authUseCasesImpl) GetSession(ctx context.Context) result.Result[*session.AuthSession] {
	return u.auth.GetSession(ctx)
}

func (u *authUseCasesImpl) Login(ctx context.Context, input session.LoginInput) result.Result[session.AuthSession] {
	return u.auth.Login(ctx, input)
}

func (u *authUseCasesImpl) SignOut(ctx context.Context) result.Result[result.Unit] {
	res := u.auth.Logout(ctx)
	if res.OK() {
		u.bus.Publish(events.Event{Type: events.LoggedOut})
	}
	return res
}

type userUseCasesImpl struct {
	users UserService
}

func NewUserUseCases(users UserService) UserUseCases {
	return &userUseCasesImpl{users: users}
}

func (u *userUseCasesImpl) GetCurrentUser(ctx context.Context) result.Result[*session.UserProfile] {
	return u.users.GetCurrentUser(ctx)
}

func (u *userUseCasesImpl) Signup(ctx context.Context, input session.SignupInput) result.Result[session.UserProfile] {
	return u.users.Signup(ctx, input)
}

func (u *userUseCasesImpl) UpdateCurrentUser(ctx context.Context, input session.UpdateUserInput) result.Result[session.UserProfile] {
	return u.users.UpdateCurrentUser(ctx, input)
}
