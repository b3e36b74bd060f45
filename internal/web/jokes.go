package web

import (
	"net/http"
	"strconv"
)

func SubmitJoke(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var body struct {
			Joke string `json:"joke"`
		}
		if err := parseJSONBody(r, &body); err != nil {
			fail(w, http.StatusBadRequest, "malformed request body")
			return
		}

		id, err := handler.service.SubmitJoke(r.Context(), s.Email, body.Joke)
		if err != nil {
			failErr(w, err)
			return
		}
		success(w, map[string]any{"id": id})
	}
}

func ListJokes(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		jokes, err := handler.service.ListJokes(r.Context(), s.Email)
		if err != nil {
			failErr(w, err)
			return
		}

		payload := make([]map[string]any, len(jokes))
		for i, j := range jokes {
			payload[i] = map[string]any{
				"id":     j.ID,
				"joke":   j.Body,
				"status": j.Status,
			}
		}
		success(w, map[string]any{"jokes": payload})
	}
}

func Trending(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
		trending, err := handler.service.Trending(r.Context(), limit)
		if err != nil {
			failErr(w, err)
			return
		}

		payload := make([]map[string]any, len(trending))
		for i, t := range trending {
			payload[i] = map[string]any{
				"joke": t.Body,
				"name": t.Author,
			}
		}
		success(w, map[string]any{"jokes": payload})
	}
}

func Notifications(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		notifications, err := handler.service.Notifications(r.Context(), s.Email)
		if err != nil {
			failErr(w, err)
			return
		}

		payload := make([]map[string]any, len(notifications))
		for i, n := range notifications {
			payload[i] = map[string]any{
				"id":      n.ID,
				"jokeId":  n.JokeID,
				"author":  n.Author,
				"created": n.Created,
			}
		}
		success(w, map[string]any{"notifications": payload})
	}
}
