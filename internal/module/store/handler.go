package store

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gustavods/storefront/internal/domain"
	"github.com/gustavods/storefront/internal/middleware"
	"github.com/gustavods/storefront/internal/pkg"
)

// StoreHandler handles REST API requests for the store resource.
type StoreHandler struct {
	svc domain.StoreService
}

// NewStoreHandler creates a new StoreHandler with the given service.
func NewStoreHandler(svc domain.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// Create handles POST /store.
func (h *StoreHandler) Create(c *gin.Context) {
	var req CreateStoreRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	creator, ok := middleware.GetAuthUser(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	store, err := h.svc.Create(c.Request.Context(), domain.StoreCreate{
		Name:    req.Name,
		Address: req.Address,
		Logo:    req.Logo,
		URL:     req.URL,
		Owner:   req.Owner,
	}, creator)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, store)
}

// Get handles GET /store/:id.
func (h *StoreHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	store, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, store)
}

// List handles GET /store.
func (h *StoreHandler) List(c *gin.Context) {
	req, err := pkg.ParsePageRequest(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /store/:id.
func (h *StoreHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var raw map[string]any
	if !pkg.BindAndValidate(c, &raw) {
		return
	}

	upd, err := parseUpdate(raw)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	store, err := h.svc.Update(c.Request.Context(), id, upd)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, store)
}

// Delete handles DELETE /store/:id.
func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// DeleteMany handles DELETE /store?ids=[...]. The delete is all-or-nothing:
// every requested id must exist.
func (h *StoreHandler) DeleteMany(c *gin.Context) {
	ids, err := parseBulkIDs(c.Query("ids"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteMany(c.Request.Context(), ids); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// parseID reads the :id path parameter as a numeric store id.
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, domain.NewValidationError("Id is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("Id must be a number")
	}
	return uint(id), nil
}
