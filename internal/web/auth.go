package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

const SessionKey = "user"

type Session struct {
	AccountID int64
	Email     string
	Moderator bool
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetSession(r.Context())
			if ok {
				h.ServeHTTP(w, r)
				return
			}
			fail(w, http.StatusUnauthorized, "not logged in")
		})
	}
}

// ModeratorMiddleware is the authorization hook in front of the moderation
// endpoints. The moderator flag is read from the session, so a promotion
// takes effect on the next login.
func ModeratorMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := GetSession(r.Context())
			if !ok {
				fail(w, http.StatusUnauthorized, "not logged in")
				return
			}
			if !s.Moderator {
				fail(w, http.StatusForbidden, "moderator access required")
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := handler.SessionManager.Load(r)

		var body credentials
		if err := parseJSONBody(r, &body); err != nil {
			fail(w, http.StatusBadRequest, "malformed request body")
			return
		}

		u, authenticated, err := handler.service.AuthenticateUser(ctx, body.Email, body.Password)
		if err != nil {
			failErr(w, err)
			return
		}

		if !authenticated {
			fail(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			AccountID: u.ID,
			Email:     u.Email,
			Moderator: u.Moderator,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create session")
			fail(w, http.StatusInternalServerError, "failed to create session")
			return
		}
		success(w, nil)
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		success(w, nil)
	}
}

func Register(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body credentials
		if err := parseJSONBody(r, &body); err != nil {
			fail(w, http.StatusBadRequest, "malformed request body")
			return
		}

		if err := handler.service.CreateUser(r.Context(), body.Email, body.Password); err != nil {
			failErr(w, err)
			return
		}
		success(w, nil)
	}
}

func ChangePassword(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		var body struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := parseJSONBody(r, &body); err != nil {
			fail(w, http.StatusBadRequest, "malformed request body")
			return
		}

		err := handler.service.ChangePassword(r.Context(), s.Email, body.CurrentPassword, body.NewPassword)
		if err != nil {
			failErr(w, err)
			return
		}
		success(w, nil)
	}
}
