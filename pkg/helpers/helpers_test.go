package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, exp, err := m.Generate(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = NewJWTManager("other", time.Hour).Parse(tok)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	tok, _, err := m.Generate(1)
	require.NoError(t, err)
	_, err = m.Parse(tok)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	assert.True(t, CompareHashAndPassword(hash, "password"))
	assert.False(t, CompareHashAndPassword(hash, "Password"))
	assert.False(t, CompareHashAndPassword("plaintext", "plaintext"))
}

func TestNewLoggerLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("app", "development", "").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("app", "production", "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "loud").GetLevel())
}

func TestSessionsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewSessions("localhost", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	s.Start(c, "tok", time.Now().Add(time.Hour))
	set := w.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, "tok", set[0].Value)
	assert.True(t, set[0].HttpOnly)
	assert.InDelta(t, 3600, set[0].MaxAge, 5)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SessionToken(c)
	assert.False(t, ok)
	c.Request.AddCookie(set[0])
	tok, ok := SessionToken(c)
	assert.True(t, ok)
	assert.Equal(t, "tok", tok)

	s.End(c)
	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}
