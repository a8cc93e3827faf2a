package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"videoname/internal/form"
	"videoname/internal/naming"
)

// Handler serves the naming pipeline to a form host.
type Handler struct {
	gen *naming.Generator
	log logrus.FieldLogger
}

// NewHandler wires a Handler to a Generator.
func NewHandler(gen *naming.Generator, log logrus.FieldLogger) *Handler {
	return &Handler{gen: gen, log: log}
}

type resultResponse struct {
	Result string `json:"result"`
}

type frameworksResponse struct {
	Frameworks []form.Preset `json:"frameworks"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListFrameworks returns the preset framework catalog.
func (h *Handler) ListFrameworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, frameworksResponse{Frameworks: form.PresetFrameworks})
}

// GenerateName composes a video name from a RawInput body.
func (h *Handler) GenerateName(w http.ResponseWriter, r *http.Request) {
	defer drainBody(r)

	var raw form.RawInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteProblem(w, r, http.StatusRequestEntityTooLarge, "request too large", err.Error(), "")
			return
		}
		WriteProblem(w, r, http.StatusBadRequest, "invalid json", err.Error(), "")
		return
	}

	name, err := h.gen.Generate(raw)
	if err != nil {
		if kind := naming.KindOf(err); kind != "" {
			WriteProblem(w, r, http.StatusUnprocessableEntity, "validation failed", err.Error(), string(kind))
			return
		}
		WriteProblem(w, r, http.StatusInternalServerError, "generation failed", err.Error(), "")
		return
	}
	h.log.WithFields(logrus.Fields{
		"request_id": RequestIDFrom(r.Context()),
		"name":       name,
	}).Debug("video name generated")
	writeJSON(w, http.StatusOK, resultResponse{Result: name})
}

// drainBody fully reads and closes request bodies.
func drainBody(r *http.Request) {
	if r.Body != nil {
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
}
