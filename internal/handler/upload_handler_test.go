package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"nextgenmobiles/backend/internal/detect"
)

func multipartFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadFile_AllowedExtension(t *testing.T) {
	env := newTestEnv(t)

	content := []byte("%PDF-1.4 demo document")
	body, contentType := multipartFile(t, "doc.pdf", content)
	w := env.do(t, http.MethodPost, "/api/upload", body, map[string]string{"Content-Type": contentType})
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeMap(t, w)
	assert.Equal(t, "File uploaded successfully", resp["message"])
	_, flagged := resp["flag"]
	assert.False(t, flagged)

	info := resp["file"].(map[string]any)
	assert.Equal(t, "doc.pdf", info["filename"])
	assert.Equal(t, float64(len(content)), info["size"])

	saved, err := os.ReadFile(filepath.Join(env.uploadDir, info["saved_filename"].(string)))
	assert.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestUploadFile_DisallowedExtension(t *testing.T) {
	env := newTestEnv(t)

	content := []byte("<?php system($_GET['cmd']); ?>")
	body, contentType := multipartFile(t, "shell.php", content)
	w := env.do(t, http.MethodPost, "/api/upload", body, map[string]string{"Content-Type": contentType})
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeMap(t, w)
	assert.Equal(t, detect.FlagFileUpload, resp["flag"])

	// The file is persisted identically to an allowed one
	info := resp["file"].(map[string]any)
	assert.Equal(t, "shell.php", info["filename"])
	saved, err := os.ReadFile(filepath.Join(env.uploadDir, info["saved_filename"].(string)))
	assert.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestUploadFile_NoFile(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("note", "no file here")
	_ = mw.Close()

	w := env.do(t, http.MethodPost, "/api/upload", &buf, map[string]string{"Content-Type": mw.FormDataContentType()})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file provided", decodeMap(t, w)["error"])
}

func TestGetUserFiles(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/user/files", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	body, contentType := multipartFile(t, "photo.png", []byte{0x89, 'P', 'N', 'G'})
	env.do(t, http.MethodPost, "/api/upload", body, map[string]string{"Content-Type": contentType})

	w = env.do(t, http.MethodGet, "/api/user/files", nil, nil)
	files := decodeList(t, w)
	if assert.Len(t, files, 1) {
		assert.Equal(t, "photo.png", files[0]["filename"])
	}
}
