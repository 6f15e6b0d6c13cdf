// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Banks
	mux.HandleFunc("GET /certifications/{certID}/bank", h.getBank)
	mux.HandleFunc("POST /certifications/{certID}/groups", h.createGroup)
	mux.HandleFunc("POST /certifications/{certID}/groups/{groupKey}/questions", h.addQuestion)

	// Transfer
	mux.HandleFunc("POST /certifications/{certID}/import", h.importQuestions)
	mux.HandleFunc("GET /certifications/{certID}/groups/{groupKey}/export", h.exportGroup)

	// Sessions
	mux.HandleFunc("POST /sessions", h.startSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advanceSession)
	mux.HandleFunc("GET /sessions/{sessionID}/mistakes", h.getMistakes)
}
