package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeTokens struct {
	token    string
	readErr  error
	writeErr error

	setCalls   int
	clearCalls int
}

func (f *fakeTokens) AccessToken(ctx context.Context) (string, error) {
	return f.token, f.readErr
}

func (f *fakeTokens) SetAccessToken(ctx context.Context, token string) error {
	f.setCalls++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.token = token
	return nil
}

func (f *fakeTokens) ClearAccessToken(ctx context.Context) error {
	f.clearCalls++
	f.token = ""
	return nil
}

type fakeClient struct {
	api.Client

	LoginToken string
	LoginUser  *models.User
	LoginErr   error

	MeUser  *models.User
	MeErr   error
	meCalls int

	RegisterUser *models.User
	RegisterErr  error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	return f.LoginToken, f.LoginUser, f.LoginErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.meCalls++
	return f.MeUser, f.MeErr
}

func (f *fakeClient) Register(ctx context.Context, input api.RegisterInput) (*models.User, error) {
	return f.RegisterUser, f.RegisterErr
}

func TestCheckWithoutTokenSkipsNetwork(t *testing.T) {
	fc := &fakeClient{}
	s := New(fc, &fakeTokens{}, testLogger())

	state := s.Check(context.Background())
	require.Equal(t, StateAnonymous, state)
	require.Zero(t, fc.meCalls)
	require.Nil(t, s.User())
}

func TestCheckResolvesStoredToken(t *testing.T) {
	fc := &fakeClient{MeUser: &models.User{ID: "u1", Username: "alice"}}
	tokens := &fakeTokens{token: "tok"}
	s := New(fc, tokens, testLogger())

	state := s.Check(context.Background())
	require.Equal(t, StateAuthenticated, state)
	require.Equal(t, "alice", s.User().Username)
}

func TestCheckClearsRejectedToken(t *testing.T) {
	fc := &fakeClient{MeErr: api.ErrUnauthorized}
	tokens := &fakeTokens{token: "expired"}
	s := New(fc, tokens, testLogger())

	state := s.Check(context.Background())
	require.Equal(t, StateAnonymous, state)
	require.Equal(t, 1, tokens.clearCalls)
	require.Empty(t, tokens.token)
}

func TestCheckTreatsTokenReadFailureAsAnonymous(t *testing.T) {
	fc := &fakeClient{}
	tokens := &fakeTokens{readErr: errors.New("db locked")}
	s := New(fc, tokens, testLogger())

	require.Equal(t, StateAnonymous, s.Check(context.Background()))
	require.Zero(t, fc.meCalls)
}

func TestLoginPersistsToken(t *testing.T) {
	fc := &fakeClient{
		LoginToken: "fresh-token",
		LoginUser:  &models.User{ID: "u1", Username: "alice", Role: models.RoleAdmin},
	}
	tokens := &fakeTokens{}
	s := New(fc, tokens, testLogger())

	require.NoError(t, s.Login(context.Background(), "a@example.com", "secret"))
	require.Equal(t, StateAuthenticated, s.State())
	require.Equal(t, "fresh-token", tokens.token)
	require.Equal(t, "alice", s.User().Username)
	require.NoError(t, s.Err())
}

func TestLoginFailureKeepsState(t *testing.T) {
	boom := errors.New("bad credentials")
	fc := &fakeClient{LoginErr: boom}
	tokens := &fakeTokens{}
	s := New(fc, tokens, testLogger())
	s.Check(context.Background())

	err := s.Login(context.Background(), "a@example.com", "wrong")
	require.ErrorIs(t, err, boom)
	require.Equal(t, StateAnonymous, s.State())
	require.ErrorIs(t, s.Err(), boom)
	require.Zero(t, tokens.setCalls)
}

func TestLoginTokenWriteFailure(t *testing.T) {
	fc := &fakeClient{LoginToken: "tok", LoginUser: &models.User{ID: "u1"}}
	tokens := &fakeTokens{writeErr: errors.New("disk full")}
	s := New(fc, tokens, testLogger())
	s.Check(context.Background())

	err := s.Login(context.Background(), "a@example.com", "secret")
	require.Error(t, err)
	require.Equal(t, StateAnonymous, s.State())
}

func TestLogoutIsLocal(t *testing.T) {
	fc := &fakeClient{MeUser: &models.User{ID: "u1"}}
	tokens := &fakeTokens{token: "tok"}
	s := New(fc, tokens, testLogger())
	require.Equal(t, StateAuthenticated, s.Check(context.Background()))

	require.NoError(t, s.Logout(context.Background()))
	require.Equal(t, StateAnonymous, s.State())
	require.Nil(t, s.User())
	require.Empty(t, tokens.token)
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	fc := &fakeClient{RegisterUser: &models.User{ID: "u9", Username: "newbie"}}
	tokens := &fakeTokens{}
	s := New(fc, tokens, testLogger())
	s.Check(context.Background())

	user, err := s.Register(context.Background(), api.RegisterInput{Username: "newbie"})
	require.NoError(t, err)
	require.Equal(t, "newbie", user.Username)
	require.Equal(t, StateAnonymous, s.State())
	require.Zero(t, tokens.setCalls)
}
