package application

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/verick-air/service-booking/internal/domain"
	"github.com/verick-air/service-booking/internal/domain/booking"
	"github.com/verick-air/service-booking/internal/gateway"
)

// Session store keys. The logged-in flag is a boolean-as-string, part of the
// external interface contract with the front end.
const (
	KeyIsLoggedIn  = "isLoggedIn"
	KeyCurrentUser = "currentUser"
)

// LoginRequest is the demo login form. Credentials are shape-checked only;
// there is no real authentication backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the stored user blob.
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SessionDTO is the response representation of the current session.
type SessionDTO struct {
	IsLoggedIn bool         `json:"is_logged_in"`
	User       *SessionUser `json:"user,omitempty"`
}

// SessionService manages the demo login flags in the session store.
type SessionService struct {
	store  gateway.Store
	logger *zap.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(store gateway.Store, logger *zap.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

// Login shape-checks the credentials and writes the session flags.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*SessionDTO, error) {
	if req.Email == "" {
		return nil, domain.NewValidationError("Email is required")
	}
	if !booking.IsValidEmail(req.Email) {
		return nil, domain.NewValidationError("Valid email is required")
	}
	if req.Password == "" {
		return nil, domain.NewValidationError("Password is required")
	}

	user := SessionUser{Email: req.Email}
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session user: %w", err)
	}

	if err := s.store.Set(ctx, KeyIsLoggedIn, "true"); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, KeyCurrentUser, string(raw)); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("email", req.Email))
	return &SessionDTO{IsLoggedIn: true, User: &user}, nil
}

// Current reads the session flags back.
func (s *SessionService) Current(ctx context.Context) (*SessionDTO, error) {
	flag, ok, err := s.store.Get(ctx, KeyIsLoggedIn)
	if err != nil {
		return nil, err
	}
	if !ok || flag != "true" {
		return &SessionDTO{IsLoggedIn: false}, nil
	}

	dto := &SessionDTO{IsLoggedIn: true}
	raw, ok, err := s.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if ok {
		var user SessionUser
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			dto.User = &user
		}
	}
	return dto, nil
}

// Logout clears the session flags.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyIsLoggedIn); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, KeyCurrentUser); err != nil {
		return err
	}
	s.logger.Info("user logged out")
	return nil
}
