package web

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/jokedrop/internal/config"
	dbimpl "github.com/sidereusnuntius/jokedrop/internal/db/impl"
	"github.com/sidereusnuntius/jokedrop/internal/initialization"
	core "github.com/sidereusnuntius/jokedrop/internal/service/impl"
	"github.com/sidereusnuntius/jokedrop/internal/state"
)

var router chi.Router
var rawDB *sql.DB

func TestMain(m *testing.M) {
	d, err := initialization.OpenDB("file:webtest?mode=memory&cache=shared")
	if err != nil {
		return
	}
	d.SetMaxOpenConns(1)

	err = initialization.SetupDB(d, "../../migrations", "webtest")
	if err != nil {
		return
	}
	rawDB = d

	cfg := config.Configuration{
		SessionKey:      "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4",
		TrendingSize:    5,
		SuggestionLimit: 5,
	}
	gob.Register(Session{})
	manager := scs.NewCookieManager(cfg.SessionKey)

	dd := dbimpl.New(cfg, d)
	service := core.New(&state.State{DB: dd, Config: cfg}, nil)
	handler := New(&cfg, service, manager)

	router = chi.NewRouter()
	handler.Mount(router)

	m.Run()
	d.Close()
}

type envelope struct {
	Success bool             `json:"success"`
	Error   string           `json:"error"`
	ID      string           `json:"id"`
	Jokes   []map[string]any `json:"jokes"`
	Users   []map[string]any `json:"users"`
	Name    string           `json:"name"`
	DOB     string           `json:"dob"`
}

func do(t *testing.T, method, path string, body any, cookies []*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	r := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	var e envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, e
}

func register(t *testing.T, email string) {
	t.Helper()
	w, e := do(t, http.MethodPost, "/register", map[string]string{
		"email":    email,
		"password": "hunter2hunter2",
	}, nil)
	if w.Code != http.StatusOK || !e.Success {
		t.Fatalf("registration of %s failed: %d %s", email, w.Code, e.Error)
	}
}

func login(t *testing.T, email string) []*http.Cookie {
	t.Helper()
	w, e := do(t, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": "hunter2hunter2",
	}, nil)
	if w.Code != http.StatusOK || !e.Success {
		t.Fatalf("login of %s failed: %d %s", email, w.Code, e.Error)
	}
	return w.Result().Cookies()
}

func TestRegisterAndLogin(t *testing.T) {
	register(t, "alice@webtest.com")

	w, e := do(t, http.MethodPost, "/register", map[string]string{
		"email":    "alice@webtest.com",
		"password": "hunter2hunter2",
	}, nil)
	if w.Code != http.StatusConflict || e.Success {
		t.Errorf("duplicate registration: expected 409, got %d", w.Code)
	}

	w, _ = do(t, http.MethodPost, "/login", map[string]string{
		"email":    "alice@webtest.com",
		"password": "wrong password",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: expected 401, got %d", w.Code)
	}

	login(t, "alice@webtest.com")
}

func TestAuthenticationRequired(t *testing.T) {
	w, _ := do(t, http.MethodGet, "/jokes", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}

	w, _ = do(t, http.MethodPost, "/follow", map[string]string{"target": "x@y"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSubmitAndModerationFlow(t *testing.T) {
	register(t, "comic@webtest.com")
	cookies := login(t, "comic@webtest.com")

	w, e := do(t, http.MethodPost, "/submit", map[string]string{
		"joke": "why did the chicken cross the road?",
	}, cookies)
	if w.Code != http.StatusOK || e.ID == "" {
		t.Fatalf("submit failed: %d %s", w.Code, e.Error)
	}
	jokeId := e.ID

	_, e = do(t, http.MethodGet, "/jokes", nil, cookies)
	if len(e.Jokes) != 1 || e.Jokes[0]["status"] != "pending" {
		t.Fatalf("expected one pending joke, got %+v", e.Jokes)
	}

	// Ordinary accounts cannot reach the moderation queue.
	w, _ = do(t, http.MethodGet, "/moderate/", nil, cookies)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-moderator, got %d", w.Code)
	}

	register(t, "admin@webtest.com")
	if _, err := rawDB.Exec("UPDATE accounts SET moderator = TRUE WHERE email = ?", "admin@webtest.com"); err != nil {
		t.Fatalf("failed to promote moderator: %v", err)
	}
	adminCookies := login(t, "admin@webtest.com")

	_, e = do(t, http.MethodGet, "/moderate/", nil, adminCookies)
	var queued bool
	for _, j := range e.Jokes {
		if j["id"] == jokeId {
			queued = true
		}
	}
	if !queued {
		t.Fatal("submitted joke missing from moderation queue")
	}

	w, _ = do(t, http.MethodPost, "/moderate/approve", map[string]string{"id": jokeId}, adminCookies)
	if w.Code != http.StatusOK {
		t.Fatalf("approve failed with %d", w.Code)
	}

	// Trending is public and must show the author's identity, since the
	// account never set a display name.
	_, e = do(t, http.MethodGet, "/trending", nil, nil)
	var found bool
	for _, j := range e.Jokes {
		if j["joke"] == "why did the chicken cross the road?" {
			found = true
			if j["name"] != "comic@webtest.com" {
				t.Errorf("expected identity fallback, got %v", j["name"])
			}
		}
	}
	if !found {
		t.Error("approved joke missing from trending")
	}

	w, _ = do(t, http.MethodPost, "/moderate/reject", map[string]string{"id": "no-such-id"}, adminCookies)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown joke, got %d", w.Code)
	}
}

func TestProfilePrivacyOverHTTP(t *testing.T) {
	register(t, "private@webtest.com")
	register(t, "snoop@webtest.com")
	cookies := login(t, "private@webtest.com")

	w, _ := do(t, http.MethodPost, "/profile/", map[string]any{
		"name":     "Priva",
		"dob":      "1999-09-09",
		"location": "Natal",
		"privacy":  map[string]bool{"name": true, "location": true, "dob": false},
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("profile update failed with %d", w.Code)
	}

	snoopCookies := login(t, "snoop@webtest.com")
	_, e := do(t, http.MethodGet, "/profile/private@webtest.com", nil, snoopCookies)
	if e.Name != "Priva" {
		t.Errorf("visible name filtered: %+v", e)
	}
	if e.DOB != "" {
		t.Errorf("hidden dob leaked: %+v", e)
	}

	_, e = do(t, http.MethodGet, "/profile/", nil, cookies)
	if e.DOB != "1999-09-09" {
		t.Errorf("owner view filtered: %+v", e)
	}
}

func TestFollowOverHTTP(t *testing.T) {
	register(t, "fan@webtest.com")
	register(t, "star@webtest.com")
	cookies := login(t, "fan@webtest.com")

	w, e := do(t, http.MethodPost, "/follow", map[string]string{"target": "star@webtest.com"}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("follow failed: %d %s", w.Code, e.Error)
	}

	w, _ = do(t, http.MethodPost, "/follow", map[string]string{"target": "fan@webtest.com"}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Errorf("self-follow: expected 400, got %d", w.Code)
	}

	w, _ = do(t, http.MethodPost, "/follow", map[string]string{"target": "ghost@webtest.com"}, cookies)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown target: expected 404, got %d", w.Code)
	}

	_, e = do(t, http.MethodGet, "/users/suggestions", nil, cookies)
	for _, u := range e.Users {
		if u["email"] == "star@webtest.com" || u["email"] == "fan@webtest.com" {
			t.Errorf("suggestions contain %v", u["email"])
		}
	}
}
