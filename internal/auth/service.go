package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// LOGIN
func (s *Service) Login(username, password string) (*User, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser resolves a user id for the report endpoints.
func (s *Service) GetUser(id string) (*User, error) {
	return s.repo.FindByID(id)
}

// SeedUsers loads the built-in staff accounts into a repository with their
// passwords bcrypt-hashed. All state is transient; accounts reset on restart.
func SeedUsers(repo UserRepository) error {
	seed := []struct {
		name     string
		username string
		password string
		role     Role
	}{
		{"Admin", "admin", "password", RoleAdmin},
		{"Jane Wanjiku", "jane", "waiter123", RoleWaiter},
		{"Peter Otieno", "peter", "cashier123", RoleCashier},
		{"Mary Njeri", "mary", "manager123", RoleManager},
		{"Joseph Kamau", "joseph", "accounts123", RoleAccountant},
		{"Grace Akinyi", "grace", "director123", RoleDirector},
		{"Daniel Mutua", "daniel", "procure123", RoleProcurement},
	}

	for _, u := range seed {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := repo.Save(&User{
			Name:     u.name,
			Username: u.username,
			Password: string(hashed),
			Role:     u.role,
		}); err != nil {
			return err
		}
	}
	return nil
}
