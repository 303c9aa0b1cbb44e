package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ArRuslan/mpj-lb2/models"
)

func TestExportGroupSchedule(t *testing.T) {
	r, db := newTestServer(t)
	group := mustCreateGroup(t, db, "test_group")
	subject := mustCreateSubject(t, db, "Programming in Java", "Java")
	// inserted out of timetable order on purpose
	mustCreateScheduleItem(t, db, group, subject, testDate(3), 1, models.LessonLab)
	mustCreateScheduleItem(t, db, group, subject, testDate(2), 2, models.LessonLecture)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/groups/%d/scheduleItems/export", group.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Position", "Subject", "Short name", "Type"}, rows[0])
	// rows come back ordered by date then position
	assert.Equal(t, []string{"2024-09-02", "2", "Programming in Java", "Java", "LECTURE"}, rows[1])
	assert.Equal(t, []string{"2024-09-03", "1", "Programming in Java", "Java", "LAB"}, rows[2])
}

func TestExportGroupScheduleUnknownGroup(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/groups/55/scheduleItems/export", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var errResp errorMessage
	decodeJSON(t, w, &errResp)
	assert.Equal(t, "Could not find group with id 55", errResp.Message)
}
