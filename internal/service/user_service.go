package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"

	"nextgenmobiles/backend/internal/detect"
	"nextgenmobiles/backend/internal/model"
	"nextgenmobiles/backend/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
	BirthDate string
}

// ProfileUpdate carries the fields a profile update may overwrite. Nil
// pointers leave the stored value alone; id, password and createdAt are
// never client-writable.
type ProfileUpdate struct {
	ID        int     `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	BirthDate *string `json:"birthDate"`
}

func (s *UserService) Register(in RegisterInput) (*model.User, error) {
	if _, exists := s.users.ByEmail(in.Email); exists {
		return nil, ErrEmailTaken
	}
	user := s.users.Add(model.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hashPassword(in.Password),
		Phone:     in.Phone,
		Address:   in.Address,
		BirthDate: in.BirthDate,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return &user, nil
}

// Login first runs the credentials through the injection detector; a match
// replaces authentication entirely. The returned token is a fresh random
// value that is never stored or checked anywhere else.
func (s *UserService) Login(email, password string) (*model.User, string, *detect.Result, error) {
	if res := detect.LoginInjection(email, password); res != nil {
		return nil, "", res, nil
	}
	user, ok := s.users.ByEmail(email)
	if !ok || user.Password != hashPassword(password) {
		return nil, "", nil, ErrInvalidCredentials
	}
	return &user, newToken(), nil, nil
}

// UpdateProfile only ever updates the demo account. Naming any other id
// yields the IDOR payload and performs no update; the id itself is taken
// from the request body with no caller-identity check.
func (s *UserService) UpdateProfile(in ProfileUpdate) (*model.User, *detect.Result, error) {
	if res := detect.ProfileUpdateIDOR(in.ID); res != nil {
		return nil, res, nil
	}
	user, ok := s.users.ByID(in.ID)
	if !ok {
		return nil, nil, ErrUserNotFound
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.BirthDate != nil {
		user.BirthDate = *in.BirthDate
	}
	s.users.Update(user)
	return &user, nil, nil
}

// ProfileByID mirrors UpdateProfile for reads via URL parameter.
func (s *UserService) ProfileByID(id int) (*model.User, *detect.Result, error) {
	if res := detect.ProfileAccessIDOR(id); res != nil {
		return nil, res, nil
	}
	user, ok := s.users.ByID(id)
	if !ok {
		return nil, nil, ErrUserNotFound
	}
	return &user, nil, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func newToken() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
