package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/certquiz/backend/internal/transfer"
)

// ── Request / Response types ────────────────────────────────────────────────

type ImportResult struct {
	Group    string `json:"group" example:"AWS"`
	Imported int    `json:"imported" example:"12"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// importQuestions merges an uploaded question set into a bank.
// @Summary      Import questions
// @Description  Validates the payload fully before merging; nothing is applied on rejection. Re-importing the same payload duplicates its entries.
// @Tags         Transfer
// @Accept       json
// @Produce      json
// @Param        certID  path      string                  true  "Certification id"
// @Param        body    body      transfer.ExportPayload  true  "Import payload: groupName plus questions"
// @Success      201     {object}  ImportResult
// @Failure      400     {object}  map[string]string  "malformed payload"
// @Router       /certifications/{certID}/import [post]
func (h *Handler) importQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certID := r.PathValue("certID")

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read payload")
		return
	}

	imp, err := transfer.ParseImport(raw)
	if h.handleDomainError(w, err) {
		return
	}

	b, err := h.banks.Load(ctx, certID)
	if h.handleDomainError(w, err) {
		return
	}

	transfer.Merge(b, imp)

	if err := h.banks.Save(ctx, certID, b); h.handleDomainError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, ImportResult{
		Group:    imp.GroupKey,
		Imported: len(imp.Questions),
	})
}

// exportGroup serializes a group as a downloadable JSON document.
// @Summary      Export a group
// @Description  Returns the group's questions with certification, group name and export date metadata, as an attachment.
// @Tags         Transfer
// @Produce      json
// @Param        certID    path      string  true   "Certification id"
// @Param        groupKey  path      string  true   "Group key or 'default'"
// @Param        label     query     string  false  "Certification display label for the metadata"
// @Success      200       {object}  transfer.ExportPayload
// @Failure      404       {object}  map[string]string  "no questions in this group"
// @Router       /certifications/{certID}/groups/{groupKey}/export [get]
func (h *Handler) exportGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certID := r.PathValue("certID")
	groupKey := r.PathValue("groupKey")

	label := r.URL.Query().Get("label")
	if label == "" {
		label = certID
	}

	b, err := h.banks.Load(ctx, certID)
	if h.handleDomainError(w, err) {
		return
	}

	payload, err := transfer.ExportGroup(b, groupKey, label, time.Now())
	if h.handleDomainError(w, err) {
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.json",
		label, payload.GroupName, sanitizeTimestamp(payload.ExportDate))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	json.NewEncoder(w).Encode(payload)
}

// sanitizeTimestamp makes an RFC3339 timestamp filename-safe.
func sanitizeTimestamp(ts string) string {
	return strings.NewReplacer(":", "-", ".", "-").Replace(ts)
}
