package store

import "github.com/gin-gonic/gin"

// StoreModule implements the app.Module interface for the store domain.
type StoreModule struct {
	handler *StoreHandler
}

// NewModule creates a new StoreModule with the given handler.
// Panics if h is nil.
func NewModule(h *StoreHandler) *StoreModule {
	if h == nil {
		panic("store.NewModule: handler must not be nil")
	}
	return &StoreModule{handler: h}
}

// RegisterRoutes registers store routes. Every store operation requires a
// valid token.
func (m *StoreModule) RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup) {
	protected.POST("/store", m.handler.Create)
	protected.GET("/store/:id", m.handler.Get)
	protected.GET("/store", m.handler.List)
	protected.PUT("/store/:id", m.handler.Update)
	protected.DELETE("/store/:id", m.handler.Delete)
	protected.DELETE("/store", m.handler.DeleteMany)
}
