package user

import (
	"github.com/gin-gonic/gin"

	"github.com/gustavods/storefront/internal/domain"
	"github.com/gustavods/storefront/internal/pkg"
)

// UserHandler handles REST API requests for the user resource.
type UserHandler struct {
	svc domain.UserService
}

// NewUserHandler creates a new UserHandler with the given service.
func NewUserHandler(svc domain.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /user.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, token, err := h.svc.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, CreateUserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Token:     token,
	})
}

// Login handles POST /user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, LoginResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// Get handles GET /user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pkg.Number("Id", c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	user, err := h.svc.FindByUniqueKey(c.Request.Context(), domain.UniqueKey{ID: id})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, user)
}

// List handles GET /user.
func (h *UserHandler) List(c *gin.Context) {
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

// Update handles PUT /user/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pkg.Number("Id", c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.Update(c.Request.Context(), uint(id), domain.UserUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, user)
}

// Delete handles DELETE /user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pkg.Number("Id", c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), uint(id)); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
