package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportScheduleItems streams the full timetable of one group as an XLSX
// workbook, ordered by date and slot position.
func (h *GroupHandler) ExportScheduleItems(c *gin.Context) {
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

	items, err := h.scheduleItems.ListAllByGroup(group)
	if err != nil {
		storeError(c, "export group schedule items", err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Schedule"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorMessageResponse{Message: "Failed to build Excel file"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Position", "Subject", "Short name", "Type"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, item := range items {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.Date.String())
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Position)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Subject.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Subject.ShortName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(item.Type))
	}

	fileName := fmt.Sprintf("schedule_group_%d_%s.xlsx", group.ID, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorMessageResponse{Message: "Failed to write Excel file"})
	}
}
