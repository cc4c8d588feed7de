package complaint

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	svc Service
	log *zap.Logger
}

func NewHandler(svc Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type turnResponse struct {
	Status        string            `json:"status"`
	SessionID     string            `json:"session_id,omitempty"`
	Message       string            `json:"message"`
	CurrentStep   int               `json:"current_step"`
	TotalSteps    int               `json:"total_steps"`
	Completed     bool              `json:"completed"`
	ComplaintID   string            `json:"complaint_id,omitempty"`
	CollectedData map[string]string `json:"collected_data,omitempty"`
	FallbackMode  bool              `json:"fallback_mode"`
}

func turnToResponse(sessionID string, res TurnResult) turnResponse {
	return turnResponse{
		Status:        "success",
		SessionID:     sessionID,
		Message:       res.Message,
		CurrentStep:   res.CurrentStep,
		TotalSteps:    res.TotalSteps,
		Completed:     res.Completed,
		ComplaintID:   res.ComplaintID,
		CollectedData: res.CollectedData,
		FallbackMode:  res.Degraded,
	}
}

// StartChat — POST /api/chat/start
func (h *Handler) StartChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}
	// An empty body is fine: a session id is generated.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	sessionID, res, err := h.svc.Start(r.Context(), payload.SessionID)
	if err != nil {
		h.internalError(w, "failed to start chat", err)
		return
	}

	h.writeJSON(w, http.StatusOK, turnToResponse(sessionID, res))
}

// ProcessMessage — POST /api/chat/message
func (h *Handler) ProcessMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.clientError(w, "invalid json")
		return
	}
	if payload.SessionID == "" || payload.Message == "" {
		h.clientError(w, "session_id and message are required")
		return
	}

	res, err := h.svc.Message(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		h.internalError(w, "failed to process message", err)
		return
	}

	h.writeJSON(w, http.StatusOK, turnToResponse("", res))
}

// ResetChat — POST /api/chat/reset
func (h *Handler) ResetChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.clientError(w, "invalid json")
		return
	}
	if payload.SessionID == "" {
		h.clientError(w, "session_id is required")
		return
	}

	if err := h.svc.Reset(r.Context(), payload.SessionID); err != nil {
		h.internalError(w, "failed to reset chat", err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": msgResetDone,
	})
}

// ComplaintCount — GET /api/complaints/count
func (h *Handler) ComplaintCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.Count(r.Context())
	if err != nil {
		h.internalError(w, "failed to get complaint count", err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"count":  count,
	})
}

// SystemStatus — GET /api/status
func (h *Handler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		h.internalError(w, "failed to get status", err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":              "success",
		"database_connected":  st.StoreConnected,
		"generator_connected": st.GeneratorConnected,
		"generator_message":   st.GeneratorMessage,
		"complaint_count":     st.ComplaintCount,
		"active_sessions":     st.ActiveSessions,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("write response", zap.Error(err))
	}
}

func (h *Handler) clientError(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, map[string]any{
		"status":  "error",
		"message": msg,
	})
}

func (h *Handler) internalError(w http.ResponseWriter, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, map[string]any{
		"status":  "error",
		"message": msg,
	})
}
