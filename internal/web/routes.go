package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	moderator := ModeratorMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Post(RegisterRoute, Register(h))
	r.Post(LoginRoute, Login(h))
	r.Get("/logout", Logout(h))

	r.Get("/trending", Trending(h))

	r.Route("/profile", func(r chi.Router) {
		r.Method("GET", "/", authenticated(OwnProfile(h)))
		r.Method("POST", "/", authenticated(UpdateProfile(h)))
		r.Get("/{email}", Profile(h))
	})
	r.Method("POST", "/change-password", authenticated(ChangePassword(h)))

	r.Method("POST", "/follow", authenticated(Follow(h)))
	r.Method("POST", "/unfollow", authenticated(Unfollow(h)))
	r.Method("GET", "/users/suggestions", authenticated(Suggestions(h)))

	r.Method("POST", "/submit", authenticated(SubmitJoke(h)))
	r.Method("GET", "/jokes", authenticated(ListJokes(h)))
	r.Method("GET", "/notifications", authenticated(Notifications(h)))

	r.Route(ModerateRoute, func(r chi.Router) {
		r.Method("GET", "/", moderator(ModerationQueue(h)))
		r.Method("POST", "/approve", moderator(Approve(h)))
		r.Method("POST", "/reject", moderator(Reject(h)))
	})
}
