package pkg

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gustavods/storefront/internal/domain"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Success sends a 200 response with data serialized as-is.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with data serialized as-is.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends a JSON error response. The HTTP status comes from the error's
// domain code; errors without one normalize to 500 with a generic message so
// internal detail never leaks to the client.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	msg := "internal error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) && !domain.IsInternal(err) {
		msg = appErr.Message
	}

	c.JSON(status, ErrorResponse{Message: msg})
}

// List sends a paginated list response: the {response, pagination} envelope
// in the body plus the pagination headers.
func List[T any](c *gin.Context, result *domain.PageResult[T]) {
	c.Header("Current-Page", strconv.Itoa(result.Meta.Page))
	c.Header("Page-Size", strconv.Itoa(result.Meta.PageSize))
	c.Header("Total-Count", strconv.FormatInt(result.Meta.Total, 10))
	c.Header("Total-Pages", strconv.Itoa(TotalPages(result.Meta.Total, result.Meta.Limit)))

	c.JSON(http.StatusOK, gin.H{
		"response":   result.Items,
		"pagination": result.Meta,
	})
}

// BindAndValidate binds the request body to obj. On failure it sends a 400
// response and returns false. Field-level rules live in the services so their
// messages can name the offending field; this guard only rejects bodies that
// cannot be decoded at all.
//
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: bindErrorMessage(err)})
		return false
	}
	return true
}

// bindErrorMessage flattens binding failures into a single message.
// validator.ValidationErrors (from any binding tags) collapse to a
// field-per-rule summary; everything else surfaces the decode error.
func bindErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		msg := strings.ToLower(fe.Field()) + " " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, ", ")
}
