package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
)

func TestRegisterSignsIn(t *testing.T) {
	ctx := context.Background()
	svc := NewService(localstore.NewMemoryStore())

	u, err := svc.Register(ctx, "Linh Tran", "Linh.Tran@Example.com", "sneaker123")
	require.NoError(t, err)
	assert.Equal(t, "linh.tran@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)

	current, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "Linh Tran", current.FullName)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(localstore.NewMemoryStore())

	_, err := svc.Register(ctx, "", "a@b.co", "sneaker123")
	assert.Error(t, err)
	_, err = svc.Register(ctx, "Linh Tran", "bad-email", "sneaker123")
	assert.Error(t, err)
	_, err = svc.Register(ctx, "Linh Tran", "a@b.co", "short")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(localstore.NewMemoryStore())

	_, err := svc.Register(ctx, "Linh Tran", "linh@example.com", "sneaker123")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Another Linh", "LINH@example.com", "sneaker456")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	svc := NewService(store)

	_, err := svc.Register(ctx, "Linh Tran", "linh@example.com", "sneaker123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, ok := svc.Current(ctx)
	assert.False(t, ok)

	u, err := svc.Login(ctx, "linh@example.com", "sneaker123")
	require.NoError(t, err)
	assert.Equal(t, "Linh Tran", u.FullName)

	// wrong password and unknown email produce the same error
	_, err = svc.Login(ctx, "linh@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "sneaker123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordStrength(t *testing.T) {
	assert.Equal(t, "weak", PasswordStrength("abc"))
	assert.Equal(t, "weak", PasswordStrength("abcdefgh"))
	assert.Equal(t, "medium", PasswordStrength("Abcdefg1"))
	assert.Equal(t, "strong", PasswordStrength("Abcdefg1!"))
}
