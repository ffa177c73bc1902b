package handler

import (
	"net/http"

	"nextgenmobiles/backend/internal/detect"
)

// UploadFile stores the multipart `file` part no matter what the extension
// is; the allowlist only decides between the plain success message and the
// unrestricted-upload detection payload.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		errorJSON(w, http.StatusBadRequest, "No file selected")
		return
	}

	info, allowed, err := h.files.Save(header.Filename, file)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if allowed {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "File uploaded successfully",
			"file":    info,
		})
		return
	}
	writeJSON(w, http.StatusOK, detect.UnrestrictedUpload(info))
}
