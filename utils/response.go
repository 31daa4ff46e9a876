package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination describes the window applied to a list response.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Envelope is the success half of the response envelope.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// EnvelopeOption decorates a success envelope.
type EnvelopeOption func(*Envelope)

func WithCount(n int) EnvelopeOption {
	return func(e *Envelope) { e.Count = &n }
}

func WithPagination(limit, offset, total int) EnvelopeOption {
	return func(e *Envelope) {
		e.Pagination = &Pagination{Limit: limit, Offset: offset, Total: total}
	}
}

func WithMessage(msg string) EnvelopeOption {
	return func(e *Envelope) { e.Message = msg }
}

// JSONSuccess writes {success: true, data, ...} with the given status.
func JSONSuccess(c *gin.Context, status int, data any, opts ...EnvelopeOption) {
	env := Envelope{Success: true, Data: data}
	for _, opt := range opts {
		opt(&env)
	}
	c.JSON(status, env)
}

// JSONOK is JSONSuccess with 200.
func JSONOK(c *gin.Context, data any, opts ...EnvelopeOption) {
	JSONSuccess(c, http.StatusOK, data, opts...)
}
