package repository

import "nextgenmobiles/backend/internal/model"

// UserRepository is the in-memory user registry. Ids are assigned as
// length+1; users are never removed, so ids stay unique in practice.
type UserRepository struct {
	users []model.User
}

func NewUserRepository(seed ...model.User) *UserRepository {
	return &UserRepository{users: append([]model.User{}, seed...)}
}

// Add assigns the next id and stores the user, returning the stored copy.
func (r *UserRepository) Add(u model.User) model.User {
	u.ID = len(r.users) + 1
	r.users = append(r.users, u)
	return u
}

func (r *UserRepository) ByEmail(email string) (model.User, bool) {
	for _, u := range r.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

func (r *UserRepository) ByID(id int) (model.User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Update replaces the stored user with the same id.
func (r *UserRepository) Update(u model.User) bool {
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = u
			return true
		}
	}
	return false
}

func (r *UserRepository) Count() int {
	return len(r.users)
}
