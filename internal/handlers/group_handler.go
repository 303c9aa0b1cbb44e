package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArRuslan/mpj-lb2/internal/services"
	"github.com/ArRuslan/mpj-lb2/models"
)

// GroupHandler serves the /groups resource. It also owns the group-scoped
// schedule listing and export, which resolve the group before delegating
// to the schedule item service.
type GroupHandler struct {
	groups        *services.GroupService
	scheduleItems *services.ScheduleItemService
}

func NewGroupHandler(groups *services.GroupService, scheduleItems *services.ScheduleItemService) *GroupHandler {
	return &GroupHandler{groups: groups, scheduleItems: scheduleItems}
}

type GroupCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type GroupUpdateRequest struct {
	Name *string `json:"name"`
}

func (h *GroupHandler) List(c *gin.Context) {
	offset, limit := PageParams(c)

	groups, count, err := h.groups.List(offset, limit)
	if err != nil {
		storeError(c, "list groups", err)
		return
	}
	c.JSON(http.StatusOK, PaginatedListResponse{Items: groups, Count: count})
}

func (h *GroupHandler) Create(c *gin.Context) {
	var body GroupCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	group := models.Group{Name: body.Name}
	if err := h.groups.Save(&group); err != nil {
		storeError(c, "create group", err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	group, err := h.groups.Get(id)
	if err != nil {
		storeError(c, "get group", err)
		return
	}
	if group == nil {
		notFound(c, "group", id)
		return
	}
	c.JSON(http.StatusOK, group)
}

// Update applies the partial-update merge: a missing, null or empty name
// means "no change requested". The store is only written when the merge
// actually changed something.
func (h *GroupHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body GroupUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	group, err := h.groups.Get(id)
	if err != nil {
		storeError(c, "get group", err)
		return
	}
	if group == nil {
		notFound(c, "group", id)
		return
	}

	if body.Name != nil && *body.Name != "" && *body.Name != group.Name {
		group.Name = *body.Name
		if err := h.groups.Save(group); err != nil {
			storeError(c, "update group", err)
			return
		}
	}
	c.JSON(http.StatusOK, group)
}

// Delete always answers 204: deleting an id that was never created is a
// deliberate no-op, keeping the operation idempotent.
func (h *GroupHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.groups.DeleteByID(id); err != nil {
		storeError(c, "delete group", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListScheduleItems pages over the schedule items belonging to one group.
func (h *GroupHandler) ListScheduleItems(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	group, err := h.groups.Get(id)
	if err != nil {
		storeError(c, "get group", err)
		return
	}
	if group == nil {
		notFound(c, "group", id)
		return
	}

	offset, limit := PageParams(c)
	items, count, err := h.scheduleItems.ListByGroup(group, offset, limit)
	if err != nil {
		storeError(c, "list group schedule items", err)
		return
	}
	c.JSON(http.StatusOK, PaginatedListResponse{Items: items, Count: count})
}
