package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"vyronex/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New(utils.ErrInvalidCredentials)
	ErrStaffDisabled      = errors.New("staff access is not configured")
)

type StaffConfig struct {
	Username  string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

type StaffService interface {
	Login(username, password string) (*utils.AccessToken, error)
}

type staffService struct {
	config StaffConfig
}

func NewStaffService(config StaffConfig) StaffService {
	return &staffService{config: config}
}

func (s *staffService) Login(username, password string) (*utils.AccessToken, error) {
	if s.config.Username == "" || s.config.Password == "" || s.config.JWTSecret == "" {
		return nil, ErrStaffDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.Password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	return utils.GenerateStaffToken(username, s.config.JWTSecret, s.config.TokenTTL)
}
