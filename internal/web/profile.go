package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/jokedrop/internal/domain"
)

func profilePayload(p domain.Profile) map[string]any {
	return map[string]any{
		"email":          p.Email,
		"name":           p.Name,
		"location":       p.Location,
		"dob":            p.DOB,
		"profilePicture": p.ProfilePicture,
		"privacy": map[string]bool{
			"name":     p.Privacy.Name,
			"location": p.Privacy.Location,
			"dob":      p.Privacy.DOB,
		},
		"followers": p.Followers,
		"following": p.Following,
	}
}

// OwnProfile returns the logged in account's profile without privacy
// filtering: owners always see their own fields.
func OwnProfile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		p, err := handler.service.GetProfile(r.Context(), s.Email, s.Email)
		if err != nil {
			failErr(w, err)
			return
		}
		success(w, profilePayload(p))
	}
}

func Profile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		email := chi.URLParam(r, "email")

		p, err := handler.service.GetProfile(r.Context(), s.Email, email)
		if err != nil {
			failErr(w, err)
			return
		}
		success(w, profilePayload(p))
	}
}

func UpdateProfile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		// Missing fields become empty and missing privacy flags fall back to
		// the registration defaults, matching the overwrite semantics the
		// frontend has always relied on.
		var body struct {
			Name           string `json:"name"`
			Location       string `json:"location"`
			DOB            string `json:"dob"`
			ProfilePicture string `json:"profilePicture"`
			Privacy        *struct {
				Name     *bool `json:"name"`
				Location *bool `json:"location"`
				DOB      *bool `json:"dob"`
			} `json:"privacy"`
		}
		if err := parseJSONBody(r, &body); err != nil {
			fail(w, http.StatusBadRequest, "malformed request body")
			return
		}

		privacy := domain.DefaultPrivacy()
		if body.Privacy != nil {
			if body.Privacy.Name != nil {
				privacy.Name = *body.Privacy.Name
			}
			if body.Privacy.Location != nil {
				privacy.Location = *body.Privacy.Location
			}
			if body.Privacy.DOB != nil {
				privacy.DOB = *body.Privacy.DOB
			}
		}

		err := handler.service.UpdateProfile(r.Context(), s.Email, domain.ProfileUpdate{
			Name:           body.Name,
			Location:       body.Location,
			DOB:            body.DOB,
			ProfilePicture: body.ProfilePicture,
			Privacy:        privacy,
		})
		if err != nil {
			failErr(w, err)
			return
		}
		success(w, nil)
	}
}
