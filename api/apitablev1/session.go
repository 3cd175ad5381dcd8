package apitablev1

import (
	"net/http"
)

const SessionCookie = "countrytable_session"

func GetSessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetSessionID sends the session cookie when id differs from the one the
// request carried.
func SetSessionID(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" || id == GetSessionID(r) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
