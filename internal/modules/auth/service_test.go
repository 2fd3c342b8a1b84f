package auth

import (
	"testing"
	"time"

	jwtsvc "studiorental/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	service := NewService(string(hash), j)

	token, err := service.Login("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	service := NewService(string(hash), jwtsvc.New("test_secret_key_32_characters_min", time.Hour))

	_, err = service.Login("guess")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
