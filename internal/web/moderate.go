package web

import (
	"net/http"

	"github.com/sidereusnuntius/jokedrop/internal/service"
)

func ModerationQueue(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queue, err := handler.service.PendingJokes(r.Context())
		if err != nil {
			failErr(w, err)
			return
		}

		payload := make([]map[string]any, len(queue))
		for i, e := range queue {
			payload[i] = map[string]any{
				"id":    e.ID,
				"email": e.Author,
				"joke":  e.Body,
			}
		}
		success(w, map[string]any{"jokes": payload})
	}
}

func Approve(handler *Handler) http.HandlerFunc {
	return moderationAction(handler, service.DecisionApprove)
}

func Reject(handler *Handler) http.HandlerFunc {
	return moderationAction(handler, service.DecisionReject)
}

func moderationAction(handler *Handler, decision string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := parseJSONBody(r, &body); err != nil {
			fail(w, http.StatusBadRequest, "malformed request body")
			return
		}

		if err := handler.service.Moderate(r.Context(), body.ID, decision); err != nil {
			failErr(w, err)
			return
		}
		success(w, nil)
	}
}
