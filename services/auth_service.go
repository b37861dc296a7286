package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/sirupsen/logrus"
)

type AuthService struct {
	State  *store.Store
	API    AuthAPI
	Tokens api.TokenStore
	Clock  clockwork.Clock
	Logger logrus.FieldLogger
}

func NewAuthService(st *store.Store, auth AuthAPI, tokens api.TokenStore, clock clockwork.Clock) *AuthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AuthService{State: st, API: auth, Tokens: tokens, Clock: clock, Logger: utils.InfoLogger}
}

// Login signs a staff member in and returns where they land.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	resp, err := s.API.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.State.Dispatch(store.AuthFailed{Error: api.Message(err, "Login failed")})
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		s.State.Dispatch(store.AuthFailed{Error: "Login failed"})
		return nil, "", errors.New("login: backend returned no token")
	}
	if err := s.Tokens.SetToken(ctx, resp.Token); err != nil {
		return nil, "", fmt.Errorf("store token: %w", err)
	}

	user := resp.User()
	if user.Role == "" {
		if claims, err := utils.DecodeTokenClaims(resp.Token); err == nil {
			user.Role = models.UserRole(claims.Role)
			user.ID = claims.UserID
		}
	}
	s.State.Dispatch(store.AuthSucceeded{Token: resp.Token, User: user})
	s.Logger.WithFields(logrus.Fields{"username": user.Username, "role": user.Role}).Info("signed in")
	return user, guard.HomeFor(user.Role), nil
}

// Logout always drops the local token, even if the backend call fails.
func (s *AuthService) Logout(ctx context.Context) string {
	if err := s.API.Logout(ctx); err != nil {
		s.Logger.WithError(err).Warn("backend logout failed")
	}
	s.clear(ctx)
	return guard.PathLogin
}

// Restore rebuilds the auth slice from the stored token. Expired or
// malformed tokens are removed.
func (s *AuthService) Restore(ctx context.Context) error {
	s.State.Dispatch(store.AuthRestoring{})

	token, err := s.Tokens.Token(ctx)
	if err != nil || token == "" {
		s.State.Dispatch(store.LoggedOut{})
		return err
	}

	claims, err := utils.DecodeTokenClaims(token)
	if err != nil {
		s.clear(ctx)
		return err
	}
	if claims.Expired(s.Clock.Now()) {
		s.clear(ctx)
		return ErrTokenExpired
	}

	user, err := s.API.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) || api.StatusCode(err) == 401 {
			s.clear(ctx)
			return err
		}
		// backend unreachable: trust the claims until the next call says otherwise
		s.Logger.WithError(err).Warn("could not load current user, using token claims")
		user = &models.User{ID: claims.UserID, Username: claims.Subject, Role: models.UserRole(claims.Role), Enabled: true}
	}

	// the retry inside the client may have rotated the token
	if current, err := s.Tokens.Token(ctx); err == nil && current != "" {
		token = current
	}
	s.State.Dispatch(store.AuthSucceeded{Token: token, User: user})
	return nil
}

// HandleAuthFailure is the client hook for a failed token refresh.
func (s *AuthService) HandleAuthFailure() {
	s.State.Dispatch(store.LoggedOut{})
}

func (s *AuthService) clear(ctx context.Context) {
	if err := s.Tokens.ClearToken(ctx); err != nil {
		s.Logger.WithError(err).Error("could not remove token")
	}
	s.State.Dispatch(store.LoggedOut{})
}
