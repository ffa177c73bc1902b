package service

import (
	"time"

	"nextgenmobiles/backend/internal/detect"
	"nextgenmobiles/backend/internal/model"
	"nextgenmobiles/backend/internal/repository"
)

type ContactInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
}

type ContactService struct {
	contacts *repository.ContactRepository
}

func NewContactService(contacts *repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Submit stores the message verbatim, with no escaping. Script-looking
// messages return the detection payload and are not stored at all.
func (s *ContactService) Submit(in ContactInput) (*model.ContactMessage, *detect.Result) {
	if res := detect.ContactXSS(in.Message); res != nil {
		return nil, res
	}
	msg := model.ContactMessage{
		ID:          s.contacts.NextID(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Subject:     in.Subject,
		Message:     in.Message,
		Newsletter:  in.Newsletter,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.contacts.Add(msg)
	return &msg, nil
}
