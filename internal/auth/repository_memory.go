package auth

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	byUsername map[string]*User
	byID       map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byUsername: make(map[string]*User),
		byID:       make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byUsername[user.Username] = user
	r.byID[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) FindByUsername(username string) (*User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindByID(id string) (*User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}
