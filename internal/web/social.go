package web

import (
	"net/http"
	"strconv"
)

func Follow(handler *Handler) http.HandlerFunc {
	return followAction(handler, true)
}

func Unfollow(handler *Handler) http.HandlerFunc {
	return followAction(handler, false)
}

func followAction(handler *Handler, follow bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var body struct {
			Target string `json:"target"`
		}
		if err := parseJSONBody(r, &body); err != nil {
			fail(w, http.StatusBadRequest, "malformed request body")
			return
		}

		var err error
		if follow {
			err = handler.service.Follow(r.Context(), s.Email, body.Target)
		} else {
			err = handler.service.Unfollow(r.Context(), s.Email, body.Target)
		}
		if err != nil {
			failErr(w, err)
			return
		}
		success(w, nil)
	}
}

func Suggestions(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
		suggestions, err := handler.service.Suggestions(r.Context(), s.Email, limit)
		if err != nil {
			failErr(w, err)
			return
		}

		users := make([]map[string]any, len(suggestions))
		for i, u := range suggestions {
			users[i] = map[string]any{
				"email": u.Email,
				"name":  u.Name,
			}
		}
		success(w, map[string]any{"users": users})
	}
}
