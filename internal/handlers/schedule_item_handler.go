package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArRuslan/mpj-lb2/internal/services"
	"github.com/ArRuslan/mpj-lb2/models"
)

// ScheduleItemHandler serves the /scheduleItems resource. It is the only
// handler with cross-entity validation: every group_id/subject_id coming
// in is resolved through the owning service before anything is written.
type ScheduleItemHandler struct {
	groups        *services.GroupService
	subjects      *services.SubjectService
	scheduleItems *services.ScheduleItemService
}

func NewScheduleItemHandler(groups *services.GroupService, subjects *services.SubjectService, scheduleItems *services.ScheduleItemService) *ScheduleItemHandler {
	return &ScheduleItemHandler{groups: groups, subjects: subjects, scheduleItems: scheduleItems}
}

type ScheduleItemCreateRequest struct {
	GroupID   uint              `json:"group_id" binding:"required"`
	SubjectID uint              `json:"subject_id" binding:"required"`
	Type      models.LessonType `json:"type" binding:"required,oneof=LECTURE PRACTICE LAB EXAM"`
	Date      models.Date       `json:"date" binding:"required"`
	Position  uint8             `json:"position"`
}

type ScheduleItemUpdateRequest struct {
	GroupID   *uint              `json:"group_id"`
	SubjectID *uint              `json:"subject_id"`
	Type      *models.LessonType `json:"type" binding:"omitempty,oneof=LECTURE PRACTICE LAB EXAM"`
	Date      *models.Date       `json:"date"`
	Position  *uint8             `json:"position"`
}

// getGroupOr404 resolves a group reference, writing the 404 response when
// it does not exist. Callers must return on nil.
func (h *ScheduleItemHandler) getGroupOr404(c *gin.Context, id uint) *models.Group {
	group, err := h.groups.Get(id)
	if err != nil {
		storeError(c, "get group", err)
		return nil
	}
	if group == nil {
		notFound(c, "group", id)
		return nil
	}
	return group
}

func (h *ScheduleItemHandler) getSubjectOr404(c *gin.Context, id uint) *models.Subject {
	subject, err := h.subjects.Get(id)
	if err != nil {
		storeError(c, "get subject", err)
		return nil
	}
	if subject == nil {
		notFound(c, "subject", id)
		return nil
	}
	return subject
}

func (h *ScheduleItemHandler) List(c *gin.Context) {
	offset, limit := PageParams(c)

	items, count, err := h.scheduleItems.List(offset, limit)
	if err != nil {
		storeError(c, "list schedule items", err)
		return
	}
	c.JSON(http.StatusOK, PaginatedListResponse{Items: items, Count: count})
}

// Create resolves both references before constructing the item, so a
// dangling group_id or subject_id fails with 404 and writes nothing.
func (h *ScheduleItemHandler) Create(c *gin.Context) {
	var body ScheduleItemCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	group := h.getGroupOr404(c, body.GroupID)
	if group == nil {
		return
	}
	subject := h.getSubjectOr404(c, body.SubjectID)
	if subject == nil {
		return
	}

	item := models.ScheduleItem{
		GroupID:   group.ID,
		Group:     *group,
		SubjectID: subject.ID,
		Subject:   *subject,
		Date:      body.Date,
		Position:  body.Position,
		Type:      body.Type,
	}
	if err := h.scheduleItems.Save(&item); err != nil {
		storeError(c, "create schedule item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ScheduleItemHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.scheduleItems.Get(id)
	if err != nil {
		storeError(c, "get schedule item", err)
		return
	}
	if item == nil {
		notFound(c, "schedule item", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update merges the supplied fields into the loaded item. Reference
// fields are re-resolved exactly like on create; scalar fields are taken
// as-is when non-null. Only an actual change triggers a write.
func (h *ScheduleItemHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body ScheduleItemUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.scheduleItems.Get(id)
	if err != nil {
		storeError(c, "get schedule item", err)
		return
	}
	if item == nil {
		notFound(c, "schedule item", id)
		return
	}

	changed := false
	if body.GroupID != nil {
		group := h.getGroupOr404(c, *body.GroupID)
		if group == nil {
			return
		}
		if group.ID != item.GroupID {
			item.GroupID = group.ID
			item.Group = *group
			changed = true
		}
	}
	if body.SubjectID != nil {
		subject := h.getSubjectOr404(c, *body.SubjectID)
		if subject == nil {
			return
		}
		if subject.ID != item.SubjectID {
			item.SubjectID = subject.ID
			item.Subject = *subject
			changed = true
		}
	}
	if body.Type != nil && *body.Type != item.Type {
		item.Type = *body.Type
		changed = true
	}
	if body.Date != nil && !body.Date.Time.Equal(item.Date.Time) {
		item.Date = *body.Date
		changed = true
	}
	if body.Position != nil && *body.Position != item.Position {
		item.Position = *body.Position
		changed = true
	}

	if changed {
		if err := h.scheduleItems.Save(item); err != nil {
			storeError(c, "update schedule item", err)
			return
		}
	}
	c.JSON(http.StatusOK, item)
}

func (h *ScheduleItemHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.scheduleItems.DeleteByID(id); err != nil {
		storeError(c, "delete schedule item", err)
		return
	}
	c.Status(http.StatusNoContent)
}
