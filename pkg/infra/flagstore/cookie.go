package flagstore

import (
	"net/http"
	"time"
)

// cookieMaxAge is the longest lifetime browsers accept; the flag is never expired by the service
const cookieMaxAge = 400 * 24 * time.Hour

// Cookie is a request-scoped FlagStore backed by browser cookies
type Cookie struct {
	r *http.Request
	w http.ResponseWriter

	// written holds values set during this request so later reads see them
	written map[string]string
}

// NewCookie binds a flag store to one request/response pair
func NewCookie(w http.ResponseWriter, r *http.Request) *Cookie {
	return &Cookie{
		r:       r,
		w:       w,
		written: make(map[string]string),
	}
}

func (c *Cookie) Get(key string) (string, bool) {
	if v, ok := c.written[key]; ok {
		return v, true
	}

	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (c *Cookie) Set(key, value string) {
	c.written[key] = value
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(cookieMaxAge),
		HttpOnly: true,
		Secure:   c.r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
