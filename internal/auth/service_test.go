package auth

import "testing"

func seededService(t *testing.T) *Service {
	t.Helper()
	repo := NewInMemoryUserRepository()
	if err := SeedUsers(repo); err != nil {
		t.Fatalf("seeding users: %v", err)
	}
	return NewService(repo)
}

func TestLoginSuccess(t *testing.T) {
	service := seededService(t)

	user, err := service.Login("peter", "cashier123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Role != RoleCashier {
		t.Errorf("expected cashier role, got %s", user.Role)
	}
	if user.ID == "" {
		t.Error("expected user ID to be set")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service := seededService(t)

	if _, err := service.Login("peter", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	service := seededService(t)

	if _, err := service.Login("nobody", "password"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSeededPasswordsAreHashed(t *testing.T) {
	repo := NewInMemoryUserRepository()
	if err := SeedUsers(repo); err != nil {
		t.Fatalf("seeding users: %v", err)
	}

	user, err := repo.FindByUsername("admin")
	if err != nil {
		t.Fatalf("seeded user not found: %v", err)
	}
	if user.Password == "password" {
		t.Fatal("password was stored in plain text")
	}
}
