package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform reply wrapper for every endpoint.
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Pagination metadata returned inside paginated list responses.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// pagedData is what goes into Envelope.Data for paginated lists.
type pagedData struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{Status: true, Message: message, Data: data})
}

// Paged sends a 200 success envelope with items and pagination metadata.
func Paged(c *gin.Context, items interface{}, pagination Pagination, message string) {
	c.JSON(http.StatusOK, Envelope{
		Status:  true,
		Message: message,
		Data:    pagedData{Items: items, Pagination: pagination},
	})
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{Status: false, Message: message})
}

// Unauthorized sends a 401 error envelope. The message is deliberately
// generic: callers must not learn whether a token was missing, expired
// or malformed.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Status: false, Message: "Unauthorized"})
}

// NotFound sends a 404 error envelope.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Envelope{Status: false, Message: message})
}

// Conflict sends a 409 error envelope.
func Conflict(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusConflict, Envelope{Status: false, Message: message})
}

// InternalError sends a 500 error envelope with a generic message so
// upstream failure detail never leaks to the caller. The error itself
// is attached to the context for the request logger.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{Status: false, Message: "Internal Server Error"})
}
