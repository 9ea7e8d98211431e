package sessions

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "cookingblog-session"

	// Flash keys, one-shot per session: read once, then gone.
	submitFlashKey = "infoSubmit"
	errorFlashKey  = "infoErrors"
)

// FlashStore holds the transient submission notices shown on the next
// render of the submit-recipe form.
type FlashStore interface {
	AddSubmitNotice(w http.ResponseWriter, r *http.Request, msg string) error
	AddErrorNotice(w http.ResponseWriter, r *http.Request, msg string) error
	PopNotices(w http.ResponseWriter, r *http.Request) (submits []string, errors []string)
}

type CookieFlashStore struct {
	store *sessions.CookieStore
}

func NewCookieFlashStore(keyPairs ...[]byte) *CookieFlashStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieFlashStore{store: store}
}

func (c *CookieFlashStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A stale or tampered cookie still yields a fresh session.
		log.Printf("FlashStore: error getting session: %v", err)
	}
	return session
}

func (c *CookieFlashStore) AddSubmitNotice(w http.ResponseWriter, r *http.Request, msg string) error {
	session := c.getSession(r)
	session.AddFlash(msg, submitFlashKey)
	return session.Save(r, w)
}

func (c *CookieFlashStore) AddErrorNotice(w http.ResponseWriter, r *http.Request, msg string) error {
	session := c.getSession(r)
	session.AddFlash(msg, errorFlashKey)
	return session.Save(r, w)
}

// PopNotices drains both notice slots. Saving after the read is what
// clears them; a failed save just means the notices show twice.
func (c *CookieFlashStore) PopNotices(w http.ResponseWriter, r *http.Request) ([]string, []string) {
	session := c.getSession(r)

	submits := flashStrings(session.Flashes(submitFlashKey))
	errs := flashStrings(session.Flashes(errorFlashKey))

	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error saving session after pop: %v", err)
	}

	return submits, errs
}

func flashStrings(flashes []interface{}) []string {
	var out []string
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
