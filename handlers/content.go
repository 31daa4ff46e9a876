package handlers

import (
	"net/http"

	"islamicdashboard/models"
	"islamicdashboard/services/content"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves /api/content.
type ContentHandler struct {
	Service content.ContentService
}

func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{Service: svc}
}

func pageOf(p models.ListParams) listquery.Page {
	return listquery.Page{Limit: p.Limit, Offset: p.Offset}
}

// ListDuasHandler handles GET /api/content/duas.
func (h *ContentHandler) ListDuasHandler(c *gin.Context) {
	params := listParams(c, content.DefaultListLimit)
	writeList(c, h.Service.ListDuas(params), pageOf(params))
}

// GetDuaHandler handles GET /api/content/duas/:id.
func (h *ContentHandler) GetDuaHandler(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	dua, err := h.Service.GetDua(id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, dua)
}

// CreateDuaHandler handles POST /api/content/duas.
func (h *ContentHandler) CreateDuaHandler(c *gin.Context) {
	var req models.CreateDuaRequest
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	dua, err := h.Service.CreateDua(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, dua, utils.WithMessage("Dua added successfully"))
}

func (h *ContentHandler) ListRuqyaHandler(c *gin.Context) {
	params := listParams(c, content.DefaultListLimit)
	writeList(c, h.Service.ListRuqya(params), pageOf(params))
}

func (h *ContentHandler) GetRuqyaHandler(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	video, err := h.Service.GetRuqya(id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, video)
}

func (h *ContentHandler) CreateRuqyaHandler(c *gin.Context) {
	var req models.CreateRuqyaRequest
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	video, err := h.Service.CreateRuqya(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, video, utils.WithMessage("Ruqya video added successfully"))
}

func (h *ContentHandler) ListBooksHandler(c *gin.Context) {
	params := listParams(c, content.DefaultListLimit)
	writeList(c, h.Service.ListBooks(params), pageOf(params))
}

func (h *ContentHandler) GetBookHandler(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	book, err := h.Service.GetBook(id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, book)
}

func (h *ContentHandler) CreateBookHandler(c *gin.Context) {
	var req models.CreateBookRequest
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	book, err := h.Service.CreateBook(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, book, utils.WithMessage("Book added successfully"))
}

// StatsHandler handles GET /api/content/stats.
func (h *ContentHandler) StatsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.Stats())
}
