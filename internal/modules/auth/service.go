// Package auth guards the service's own ops surface (catalog edits, booking
// listing). A single admin principal logs in with a password checked against
// a bcrypt hash from the environment and gets a short-lived JWT.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

type tokenIssuer interface {
	GenerateToken(subject, role string) (string, error)
}

type Service struct {
	adminHash string
	jwt       tokenIssuer
}

func NewService(adminHash string, jwt tokenIssuer) *Service {
	return &Service{adminHash: adminHash, jwt: jwt}
}

func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken("admin", RoleAdmin)
}
