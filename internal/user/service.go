package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/chei-t/spice.com/internal/auth"
	"github.com/chei-t/spice.com/internal/notify"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidName        = errors.New("name must be between 2 and 50 characters")
	ErrInvalidEmail       = errors.New("please provide a valid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo        UserRepository
	tokens      *auth.TokenManager
	mailer      notify.Sender
	adminEmails map[string]bool
}

func NewService(repo UserRepository, tokens *auth.TokenManager, mailer notify.Sender, adminEmails []string) *Service {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &Service{repo: repo, tokens: tokens, mailer: mailer, adminEmails: admins}
}

// AuthResponse is the register/login payload: the user's public fields plus
// a fresh bearer token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Register creates a new account. The role is admin only when the email is
// on the configured admin list.
func (s *Service) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(name) < 2 || len(name) > 50 {
		return nil, ErrInvalidName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	role := RoleCustomer
	if s.adminEmails[email] {
		role = RoleAdmin
	}

	u := &User{
		ID:           primitive.NewObjectID().Hex(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	// Welcome mail is best-effort.
	go func() {
		body := fmt.Sprintf("Hi %s,\n\nWelcome to the Spice & Herbs store!", u.Name)
		if err := s.mailer.Send(context.Background(), u.Email, "Welcome to Spice & Herbs", body); err != nil {
			log.Printf("welcome mail failed: %v", err)
		}
	}()

	return &AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Token: token}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Token: token}, nil
}

// Profile returns the user without the password hash (the hash never
// serializes anyway).
func (s *Service) Profile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*User{}
	}
	return users, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
