package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"psybook/internal/domain"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func noContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "internal server error")
}

// domainErrorResponse maps a typed domain error onto its HTTP status and
// passes the message through verbatim. Anything that is not a domain error is
// a 500 with a generic message; the real cause goes to the logs only.
func domainErrorResponse(c *gin.Context, err error) {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		internalServerErrorResponse(c)
		return
	}

	switch domainErr.Kind {
	case domain.ErrKindNotFound:
		errorResponse(c, http.StatusNotFound, domainErr.Message)
	case domain.ErrKindBadRequest:
		errorResponse(c, http.StatusBadRequest, domainErr.Message)
	case domain.ErrKindConflict:
		errorResponse(c, http.StatusConflict, domainErr.Message)
	default:
		internalServerErrorResponse(c)
	}
}
