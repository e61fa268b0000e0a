package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/pkg/apperr"
)

func TestSignUpAndLogin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)

	pair, err := f.authService.Login(ctx, &LoginInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestSignUp_DuplicateLogin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrLoginTaken)
}

func TestLogin_NoExistenceLeak(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)

	// Wrong password and unknown login must be indistinguishable.
	_, wrongPass := f.authService.Login(ctx, &LoginInput{Login: "alice", Password: "guess"})
	_, unknownUser := f.authService.Login(ctx, &LoginInput{Login: "nobody", Password: "guess"})

	assert.ErrorIs(t, wrongPass, domain.ErrAuthFailed)
	assert.ErrorIs(t, unknownUser, domain.ErrAuthFailed)
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	f := newFixture()

	_, err := f.authService.Login(context.Background(), &LoginInput{Login: "alice"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestRefresh_Rotation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	pair, err := f.authService.Login(ctx, &LoginInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)

	next, err := f.authService.Refresh(ctx, &RefreshInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)
	assert.NotEmpty(t, next.RefreshToken)
}

func TestRefresh_MissingToken(t *testing.T) {
	f := newFixture()

	_, err := f.authService.Refresh(context.Background(), &RefreshInput{})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestRefresh_InvalidToken(t *testing.T) {
	f := newFixture()

	_, err := f.authService.Refresh(context.Background(), &RefreshInput{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, domain.ErrBadRefreshToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	pair, err := f.authService.Login(ctx, &LoginInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = f.authService.Refresh(ctx, &RefreshInput{RefreshToken: pair.AccessToken})
	assert.ErrorIs(t, err, domain.ErrBadRefreshToken)
}

func TestRefresh_DeletedUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	pair, err := f.authService.Login(ctx, &LoginInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, f.userService.Delete(ctx, user.ID))

	_, err = f.authService.Refresh(ctx, &RefreshInput{RefreshToken: pair.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrBadRefreshToken)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.authService.SignUp(ctx, &SignUpInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	pair, err := f.authService.Login(ctx, &LoginInput{Login: "alice", Password: "secret"})
	require.NoError(t, err)

	got, err := f.authService.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = f.authService.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	// A refresh token is not an access token.
	_, err = f.authService.Authenticate(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	require.NoError(t, f.userService.Delete(ctx, user.ID))
	_, err = f.authService.Authenticate(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
