package repository

import "nextgenmobiles/backend/internal/model"

// ContactRepository is the in-memory contact log. Messages are stored
// verbatim and never mutated or deleted.
type ContactRepository struct {
	messages []model.ContactMessage
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{messages: make([]model.ContactMessage, 0)}
}

func (r *ContactRepository) NextID() int {
	return len(r.messages) + 1
}

func (r *ContactRepository) Add(m model.ContactMessage) {
	r.messages = append(r.messages, m)
}

func (r *ContactRepository) All() []model.ContactMessage {
	return r.messages
}
