package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chei-t/spice.com/internal/auth"
	"github.com/chei-t/spice.com/internal/notify"
)

type mockRepository struct {
	byEmail map[string]*User
	err     error
}

func newMockRepository() *mockRepository {
	return &mockRepository{byEmail: map[string]*User{}}
}

func (m *mockRepository) GetByID(_ context.Context, id string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (m *mockRepository) Insert(_ context.Context, u *User) error {
	if m.err != nil {
		return m.err
	}
	if _, exists := m.byEmail[u.Email]; exists {
		return ErrEmailTaken
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockRepository) List(context.Context) ([]*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*User
	for _, u := range m.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockRepository) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for email, u := range m.byEmail {
		if u.ID == id {
			delete(m.byEmail, email)
			return nil
		}
	}
	return ErrUserNotFound
}

func newTestService(repo UserRepository, adminEmails ...string) *Service {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewService(repo, tokens, notify.NopSender{}, adminEmails)
}

func TestRegister_Success(t *testing.T) {
	repo := newMockRepository()
	sut := newTestService(repo)

	resp, err := sut.Register(context.Background(), "Alice", "Alice@Example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, RoleCustomer, resp.Role)
	assert.NotEmpty(t, resp.Token)

	stored := repo.byEmail["alice@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestRegister_AdminEmailGetsAdminRole(t *testing.T) {
	sut := newTestService(newMockRepository(), "boss@example.com")

	resp, err := sut.Register(context.Background(), "Boss", "BOSS@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, resp.Role)
}

func TestRegister_Validation(t *testing.T) {
	sut := newTestService(newMockRepository())
	ctx := context.Background()

	_, err := sut.Register(ctx, "A", "a@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = sut.Register(ctx, "Alice", "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = sut.Register(ctx, "Alice", "a@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	sut := newTestService(newMockRepository())
	ctx := context.Background()

	_, err := sut.Register(ctx, "Alice", "a@example.com", "secret1")
	require.NoError(t, err)

	_, err = sut.Register(ctx, "Alice Again", "a@example.com", "secret2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockRepository()
	sut := newTestService(repo)
	ctx := context.Background()

	_, err := sut.Register(ctx, "Alice", "a@example.com", "secret1")
	require.NoError(t, err)

	resp, err := sut.Login(ctx, "a@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	sut := newTestService(newMockRepository())
	ctx := context.Background()

	_, err := sut.Register(ctx, "Alice", "a@example.com", "secret1")
	require.NoError(t, err)

	_, err = sut.Login(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	sut := newTestService(newMockRepository())

	_, err := sut.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestList_NilBecomesEmptySlice(t *testing.T) {
	sut := newTestService(newMockRepository())

	users, err := sut.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
