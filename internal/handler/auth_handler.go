package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nextgenmobiles/backend/internal/model"
	"nextgenmobiles/backend/internal/service"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birthDate"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Required fields are reported one at a time, in a fixed order.
	required := []struct {
		name  string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"password", req.Password},
	}
	for _, field := range required {
		if field.value == "" {
			errorJSON(w, http.StatusBadRequest, field.name+" is required")
			return
		}
	}

	user, err := h.users.Register(service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			errorJSON(w, http.StatusBadRequest, "Email already registered")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, detection, err := h.users.Login(req.Email, req.Password)
	if detection != nil {
		writeJSON(w, http.StatusOK, detection)
		return
	}
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == 0 {
		errorJSON(w, http.StatusBadRequest, "User ID is required")
		return
	}

	user, detection, err := h.users.UpdateProfile(req)
	if detection != nil {
		writeJSON(w, http.StatusOK, detection)
		return
	}
	if err != nil {
		errorJSON(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Not found")
		return
	}

	user, detection, err := h.users.ProfileByID(id)
	if detection != nil {
		writeJSON(w, http.StatusOK, detection)
		return
	}
	if err != nil {
		errorJSON(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUserFiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.files.ForUser(model.DemoUserID))
}
