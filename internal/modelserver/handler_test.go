package modelserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brickyard/internal/models"
)

func writeMesh(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("solid brick\nendsolid brick\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestListModels(t *testing.T) {
	root := t.TempDir()
	writeMesh(t, filepath.Join(root, "1x2", "1x2.stl"))
	writeMesh(t, filepath.Join(root, "1x2", "preview.png"))

	rec := httptest.NewRecorder()
	NewHandler(root).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ModelsPath, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var got []models.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "1x2" || got[0].Path != filepath.Join(root, "1x2", "1x2.stl") {
		t.Fatalf("unexpected listing %+v", got)
	}
}

func TestListModelsEmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(t.TempDir()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ModelsPath, nil))
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want []", body)
	}
}

func TestListModelsDirectoryError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	rec := httptest.NewRecorder()
	NewHandler(missing).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ModelsPath, nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "Error reading directory: ") {
		t.Fatalf("body = %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestListModelsRejectsOtherMethods(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(t.TempDir()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, ModelsPath, nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
