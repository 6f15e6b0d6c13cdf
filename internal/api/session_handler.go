package api

import (
	"errors"
	"net/http"

	"github.com/certquiz/backend/internal/domain/bank"
	"github.com/certquiz/backend/internal/domain/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	Certification string `json:"certification" example:"aws-cloud-practitioner.json"`
	Group         string `json:"group" example:"default"`
}

func (r *StartSessionRequest) Validate() error {
	if r.Certification == "" {
		return errors.New("certification is required")
	}
	return nil
}

type SessionStateResponse struct {
	Phase          string `json:"phase" example:"presenting"`
	CurrentIndex   int    `json:"currentIndex"`
	Total          int    `json:"total"`
	CorrectCount   int    `json:"correctCount"`
	IncorrectCount int    `json:"incorrectCount"`
}

type SessionResponse struct {
	ID       string                `json:"id"`
	State    SessionStateResponse  `json:"state"`
	Question *session.QuestionView `json:"question,omitempty"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"b"`
}

type SubmitAnswerResponse struct {
	Answered        bool   `json:"answered"`
	Correct         bool   `json:"correct"`
	CorrectAnswer   string `json:"correctAnswer,omitempty"`
	Message         string `json:"message,omitempty"`
	FeedbackDelayMs int    `json:"feedbackDelayMs"`
}

type MistakesResponse struct {
	Mistakes []session.Mistake `json:"mistakes"`
}

func stateResponse(s session.State) SessionStateResponse {
	return SessionStateResponse{
		Phase:          string(s.Phase),
		CurrentIndex:   s.CurrentIndex,
		Total:          s.Total,
		CorrectCount:   s.CorrectCount,
		IncorrectCount: s.IncorrectCount,
	}
}

// sessionResponse snapshots the engine, attaching the current question
// view when one is being presented or judged.
func sessionResponse(id string, engine *session.Engine) SessionResponse {
	resp := SessionResponse{ID: id, State: stateResponse(engine.State())}
	if view, err := engine.Current(); err == nil {
		resp.Question = &view
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession begins a quiz run over a certification's group.
// @Summary      Start a quiz session
// @Description  Resolves the group and starts a run over a freshly shuffled copy of its questions. A new run for the same certification and group discards the in-flight one.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  true  "Certification and group"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "no questions in this group"
// @Router       /sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Group == "" {
		req.Group = bank.DefaultGroup
	}

	b, err := h.banks.Load(ctx, req.Certification)
	if h.handleDomainError(w, err) {
		return
	}

	engine := session.New()
	if err := engine.Start(b.Resolve(req.Group)); h.handleDomainError(w, err) {
		return
	}

	id := h.sessions.Add(req.Certification, req.Group, engine)
	respondJSON(w, http.StatusCreated, sessionResponse(id, engine))
}

// getSession returns a run's state and current question.
// @Summary      Get session state
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")

	s, ok := h.sessions.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	respondJSON(w, http.StatusOK, sessionResponse(id, s.engine))
}

// submitAnswer judges the selected alternative for the current question.
// @Summary      Submit an answer
// @Description  An empty answer is a normal re-prompt, not an error. A judged answer moves the session to the feedback phase; the client shows the verdict for feedbackDelayMs and then calls advance.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session id"
// @Param        body       body      SubmitAnswerRequest  true  "Selected alternative letter, or empty"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "no question being presented"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")

	s, ok := h.sessions.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	verdict, err := s.engine.SubmitAnswer(req.Answer)
	s.mu.Unlock()

	switch {
	case errors.Is(err, session.ErrNoActiveQuestion):
		respondError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, session.ErrUnknownAlternative):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("submit answer failed", "session", id, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := SubmitAnswerResponse{
		Answered:        verdict.Answered,
		Correct:         verdict.Correct,
		CorrectAnswer:   verdict.CorrectAnswer,
		FeedbackDelayMs: int(h.feedbackDelay.Milliseconds()),
	}
	if !verdict.Answered {
		resp.Message = "please select an answer"
	}
	respondJSON(w, http.StatusOK, resp)
}

// advanceSession moves past a judged answer.
// @Summary      Advance to the next question
// @Description  Called after the feedback-display delay. Returns the next question, or the final state when the run is finished.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "no judged answer to advance from"
// @Router       /sessions/{sessionID}/advance [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")

	s, ok := h.sessions.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.engine.Advance(); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse(id, s.engine))
}

// getMistakes returns the wrong answers of a run.
// @Summary      List a session's mistakes
// @Description  Each entry carries the question, the user's answer text and the correct answer text.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session id"
// @Success      200        {object}  MistakesResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/mistakes [get]
func (h *Handler) getMistakes(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")

	s, ok := h.sessions.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	respondJSON(w, http.StatusOK, MistakesResponse{Mistakes: s.engine.Mistakes()})
}
