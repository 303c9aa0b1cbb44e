package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArRuslan/mpj-lb2/internal/services"
	"github.com/ArRuslan/mpj-lb2/models"
)

// SubjectHandler serves the /subjects resource.
type SubjectHandler struct {
	subjects *services.SubjectService
}

func NewSubjectHandler(subjects *services.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

type SubjectCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
}

type SubjectUpdateRequest struct {
	Name      *string `json:"name"`
	ShortName *string `json:"short_name"`
}

func (h *SubjectHandler) List(c *gin.Context) {
	offset, limit := PageParams(c)

	subjects, count, err := h.subjects.List(offset, limit)
	if err != nil {
		storeError(c, "list subjects", err)
		return
	}
	c.JSON(http.StatusOK, PaginatedListResponse{Items: subjects, Count: count})
}

func (h *SubjectHandler) Create(c *gin.Context) {
	var body SubjectCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	subject := models.Subject{Name: body.Name, ShortName: body.ShortName}
	if err := h.subjects.Save(&subject); err != nil {
		storeError(c, "create subject", err)
		return
	}
	c.JSON(http.StatusOK, subject)
}

func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	subject, err := h.subjects.Get(id)
	if err != nil {
		storeError(c, "get subject", err)
		return
	}
	if subject == nil {
		notFound(c, "subject", id)
		return
	}
	c.JSON(http.StatusOK, subject)
}

// Update merges the supplied string fields; null or empty values are a
// no-op, not an error. Writes only happen when a field changed.
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body SubjectUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	subject, err := h.subjects.Get(id)
	if err != nil {
		storeError(c, "get subject", err)
		return
	}
	if subject == nil {
		notFound(c, "subject", id)
		return
	}

	changed := false
	if body.Name != nil && *body.Name != "" && *body.Name != subject.Name {
		subject.Name = *body.Name
		changed = true
	}
	if body.ShortName != nil && *body.ShortName != "" && *body.ShortName != subject.ShortName {
		subject.ShortName = *body.ShortName
		changed = true
	}

	if changed {
		if err := h.subjects.Save(subject); err != nil {
			storeError(c, "update subject", err)
			return
		}
	}
	c.JSON(http.StatusOK, subject)
}

func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.subjects.DeleteByID(id); err != nil {
		storeError(c, "delete subject", err)
		return
	}
	c.Status(http.StatusNoContent)
}
