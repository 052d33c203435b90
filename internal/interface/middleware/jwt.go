package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-lightbnb/pkg/helpers"
	"github.com/oksasatya/go-lightbnb/pkg/response"
)

const CtxUserIDKey = "userID"

// JWTAuth reads the session cookie, validates it, and injects the user id
// (int64) into the context.
func JWTAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := helpers.SessionToken(c)
		if !ok {
			abort(c, "missing access token", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			abort(c, "invalid access token", err.Error())
			return
		}
		uid, err := claims.UserID()
		if err != nil {
			abort(c, "invalid access token", "malformed subject")
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

func abort(c *gin.Context, msg string, detail any) {
	resp := response.Build[any](c, http.StatusUnauthorized, msg, detail)
	c.AbortWithStatusJSON(resp.Status, resp)
}
