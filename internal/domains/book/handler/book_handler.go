package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/service"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// StoreBooks - POST /books
// Fetches books for the requested author from the external catalog and
// stores them, returning the insert/duplicate summary.
func (h *BookHandler) StoreBooks(c *gin.Context) {
	var req model.StoreBooksRequest

	if err := c.BindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			response.UnprocessableEntity(c, "invalid request body", fields)
			return
		}
		response.UnprocessableEntity(c, "invalid request body", err.Error())
		return
	}

	summary, err := h.service.FetchAndStore(c.Request.Context(), req.Author)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListBooks - GET /books?author=&title=
// Both filters optional, case-insensitive substring matches combined with AND.
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter := model.BookFilter{
		Author: c.Query("author"),
		Title:  c.Query("title"),
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	if books == nil {
		books = []model.BookResponse{}
	}
	c.JSON(http.StatusOK, books)
}

func (h *BookHandler) writeServiceError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadGateway:
		response.BadGateway(c, err.Error())
	case http.StatusInternalServerError:
		response.InternalServerError(c, err.Error())
	default:
		// Upstream application error: surface its own status code.
		response.ErrorResponse(c, status, "UPSTREAM_ERROR", err.Error())
	}
}
