// Package api implements the chakrascand REST API: scan submission and
// inventory read endpoints around the scoring and report pipeline.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/internal/intake"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/render"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/report"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

// Handler is the top-level API handler for the chakrascand service.
type Handler struct {
	inv  *inventory.Inventory
	logo []byte
}

// NewHandler creates an API handler serving the given inventory. The logo
// bytes, if any, are embedded on every report cover.
func NewHandler(inv *inventory.Inventory, logo []byte) *Handler {
	return &Handler{inv: inv, logo: logo}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/scan", h.handleScan)
	mux.HandleFunc("GET /v1/inventory", h.handleInventory)
}

// handleScan scores a completed questionnaire and returns the rendered
// report: a PDF by default, the report JSON with ?format=json.
func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	var doc intake.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bound, err := doc.Bind(h.inv)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	traits, err := scoring.ScorePersonality(bound.Personality)
	if err != nil {
		writeError(w, badRequestStatus(err), err.Error())
		return
	}
	chakras, err := scoring.ScoreChakras(bound.Chakras)
	if err != nil {
		writeError(w, badRequestStatus(err), err.Error())
		return
	}

	rep := report.Assemble(traits, chakras, bound.Meta, h.logo)

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, rep)
		return
	}

	// Render fully before touching the response: a failed render must not
	// leave a partial document on the wire.
	var buf bytes.Buffer
	if err := (&render.PDFRenderer{}).Render(&buf, rep); err != nil {
		log.Printf("render error: %v", err)
		writeError(w, http.StatusInternalServerError, "report rendering failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="personality_chakra_report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleInventory returns the configured item sets so clients can render
// the questionnaire.
func (h *Handler) handleInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.inv)
}

// badRequestStatus maps scoring failures to 400 and anything else to 500.
func badRequestStatus(err error) int {
	var ve *scoring.ValidationError
	var me *scoring.MissingDataError
	if errors.As(err, &ve) || errors.As(err, &me) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
