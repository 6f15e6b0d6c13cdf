package api

import (
	"errors"
	"net/http"

	"github.com/certquiz/backend/internal/domain/bank"
)

// ── Request / Response types ────────────────────────────────────────────────

type BankResponse struct {
	Certification    string                     `json:"certification"`
	DefaultQuestions []bank.Question            `json:"defaultQuestions"`
	Groups           map[string][]bank.Question `json:"groups"`
	GroupKeys        []string                   `json:"groupKeys"`
}

type CreateGroupRequest struct {
	Name string `json:"name" example:"Grupo AWS"`
}

func (r *CreateGroupRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type CreateGroupResponse struct {
	Group string `json:"group" example:"AWS"`
}

type AddQuestionRequest struct {
	Question string `json:"question"`
	A        string `json:"a"`
	B        string `json:"b"`
	C        string `json:"c"`
	D        string `json:"d"`
	Correct  string `json:"correct" example:"b"`
}

func (r *AddQuestionRequest) toQuestion() bank.Question {
	return bank.Question{
		Text:    r.Question,
		A:       r.A,
		B:       r.B,
		C:       r.C,
		D:       r.D,
		Correct: r.Correct,
	}
}

func (r *AddQuestionRequest) Validate() error {
	return r.toQuestion().Validate()
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getBank returns the full bank for a certification.
// @Summary      Get a certification's question bank
// @Description  Loads the bank, seeding it from the shipped question set on first access.
// @Tags         Banks
// @Produce      json
// @Param        certID  path      string  true  "Certification id"
// @Success      200     {object}  BankResponse
// @Failure      500     {object}  map[string]string
// @Router       /certifications/{certID}/bank [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certID := r.PathValue("certID")

	b, err := h.banks.Load(ctx, certID)
	if h.handleDomainError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, BankResponse{
		Certification:    certID,
		DefaultQuestions: b.DefaultQuestions,
		Groups:           b.Groups,
		GroupKeys:        b.GroupKeys(),
	})
}

// createGroup creates an empty named group.
// @Summary      Create a question group
// @Description  Normalizes the name (trims, strips a leading "Grupo", uppercases) into the group key.
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        certID  path      string              true  "Certification id"
// @Param        body    body      CreateGroupRequest  true  "Group to create"
// @Success      201     {object}  CreateGroupResponse
// @Failure      400     {object}  map[string]string
// @Failure      409     {object}  map[string]string  "group already exists"
// @Router       /certifications/{certID}/groups [post]
func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certID := r.PathValue("certID")

	var req CreateGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.banks.Load(ctx, certID)
	if h.handleDomainError(w, err) {
		return
	}

	key, err := b.CreateGroup(req.Name)
	if h.handleDomainError(w, err) {
		return
	}

	if err := h.banks.Save(ctx, certID, b); h.handleDomainError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, CreateGroupResponse{Group: key})
}

// addQuestion appends a question to the default list or a named group.
// @Summary      Add a question
// @Description  Appends the question; insertion order is the display-order baseline before shuffling.
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        certID    path      string              true  "Certification id"
// @Param        groupKey  path      string              true  "Group key or 'default'"
// @Param        body      body      AddQuestionRequest  true  "Question to add"
// @Success      201       {object}  AddQuestionRequest
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string  "group not found"
// @Router       /certifications/{certID}/groups/{groupKey}/questions [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certID := r.PathValue("certID")
	groupKey := r.PathValue("groupKey")

	var req AddQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.banks.Load(ctx, certID)
	if h.handleDomainError(w, err) {
		return
	}

	if err := b.AddQuestion(groupKey, req.toQuestion()); h.handleDomainError(w, err) {
		return
	}

	if err := h.banks.Save(ctx, certID, b); h.handleDomainError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, req)
}
