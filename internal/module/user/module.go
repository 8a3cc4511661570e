package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for the user domain.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers user routes. Signup and login are public; every
// other operation requires a valid token.
func (m *UserModule) RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup) {
	public.POST("/user", m.handler.Create)
	public.POST("/user/login", m.handler.Login)

	protected.GET("/user/:id", m.handler.Get)
	protected.GET("/user", m.handler.List)
	protected.PUT("/user/:id", m.handler.Update)
	protected.DELETE("/user/:id", m.handler.Delete)
}
