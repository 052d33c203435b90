package router

import "github.com/gin-gonic/gin"

// Module is a feature slice (accounts, listings, debug) that mounts its own
// routes under the shared root group.
type Module interface {
	Register(root *gin.RouterGroup)
}
