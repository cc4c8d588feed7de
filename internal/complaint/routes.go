package complaint

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat/start", h.StartChat)
		r.Post("/chat/message", h.ProcessMessage)
		r.Post("/chat/reset", h.ResetChat)
		r.Get("/complaints/count", h.ComplaintCount)
		r.Get("/status", h.SystemStatus)
	})
}
