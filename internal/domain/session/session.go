// Package session holds the derived read projections of the external identity
// provider's session. Nothing here is persisted by this core; both shapes are
// recomputed per request by the auth/user adapters.
package session

// Tokens mirrors the provider token block. The identity provider does not
// expose access/refresh tokens to this core, so the adapters fill empty-string
// placeholders.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

type UserProfile struct {
	ID       string
	Email    string
	Role     string
	FullName string
	Avatar   string
}

type AuthSession struct {
	Tokens Tokens
	User   UserProfile
}

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	FullName string
	Email    string
	Password string
}

// UpdateUserInput is partial; nil fields are left untouched.
type UpdateUserInput struct {
	FullName *string
	Avatar   *string
	Password *string
}
