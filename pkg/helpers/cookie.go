package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie holds the signed session token. It is HttpOnly so the
// listing pages never see it.
const SessionCookie = "access_token"

// Sessions writes and reads the session cookie for one site.
type Sessions struct {
	Domain string
	Secure bool
}

func NewSessions(domain string, secure bool) *Sessions {
	return &Sessions{Domain: domain, Secure: secure}
}

// Start stores token until exp.
func (s *Sessions) Start(c *gin.Context, token string, exp time.Time) {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		sec = 0
	}
	s.write(c, token, sec)
}

// End expires the cookie in the browser.
func (s *Sessions) End(c *gin.Context) {
	s.write(c, "", -1)
}

func (s *Sessions) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, value, maxAge, "/", s.Domain, s.Secure, true)
}

// SessionToken returns the token carried by the request, if any.
func SessionToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
