package handler

import (
	"encoding/json"
	"net/http"

	"nextgenmobiles/backend/internal/service"
)

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, detection := h.contacts.Submit(req)
	if detection != nil {
		writeJSON(w, http.StatusOK, detection)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Contact form submitted successfully",
		"contactId": msg.ID,
	})
}
