package services

import (
	"testing"
	"time"

	"vyronex/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffService_Login(t *testing.T) {
	svc := NewStaffService(StaffConfig{
		Username:  "manager",
		Password:  "s3cret-showroom",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})

	token, err := svc.Login("manager", "s3cret-showroom")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)

	claims, err := utils.ValidateToken(token.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Username)

	_, err = svc.Login("manager", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("someone", "s3cret-showroom")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaffService_Disabled(t *testing.T) {
	svc := NewStaffService(StaffConfig{JWTSecret: "test-secret"})
	_, err := svc.Login("", "")
	assert.ErrorIs(t, err, ErrStaffDisabled)
}
