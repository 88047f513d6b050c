package modelserver

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"brickyard/internal/models"
)

// ModelsPath is the listing route.
const ModelsPath = "/models"

const tracerName = "brickyard/modelserver"

// NewHandler serves GET /models for the brick meshes under root.
func NewHandler(root string) http.Handler {
	h := &handler{root: root}
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ModelsPath, h.listModels)
	return mux
}

type handler struct {
	root string
}

func (h *handler) listModels(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer(tracerName).Start(r.Context(), "list models",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("models.root", h.root)),
	)
	defer span.End()

	entries, err := models.Scan(h.root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read directory")
		log.Printf("list models in %s: %v", h.root, err)
		http.Error(w, fmt.Sprintf("Error reading directory: %v", err), http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("models.count", len(entries)))
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
