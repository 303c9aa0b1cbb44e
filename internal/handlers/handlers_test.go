package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ArRuslan/mpj-lb2/internal/routes"
	"github.com/ArRuslan/mpj-lb2/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds a router over a fresh in-memory store.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Group{}, &models.Subject{}, &models.ScheduleItem{}))
	return routes.SetupRouter(db), db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func mustCreateGroup(t *testing.T, db *gorm.DB, name string) models.Group {
	t.Helper()
	group := models.Group{Name: name}
	require.NoError(t, db.Save(&group).Error)
	return group
}

func mustCreateSubject(t *testing.T, db *gorm.DB, name, shortName string) models.Subject {
	t.Helper()
	subject := models.Subject{Name: name, ShortName: shortName}
	require.NoError(t, db.Save(&subject).Error)
	return subject
}

func mustCreateScheduleItem(t *testing.T, db *gorm.DB, group models.Group, subject models.Subject, date models.Date, position uint8, lessonType models.LessonType) models.ScheduleItem {
	t.Helper()
	item := models.ScheduleItem{
		GroupID:   group.ID,
		SubjectID: subject.ID,
		Date:      date,
		Position:  position,
		Type:      lessonType,
	}
	require.NoError(t, db.Save(&item).Error)
	return item
}

func testDate(day int) models.Date {
	return models.NewDate(2024, time.September, day)
}

// groupPage mirrors the list envelope for groups.
type groupPage struct {
	Items []models.Group `json:"items"`
	Count int64          `json:"count"`
}

type subjectPage struct {
	Items []models.Subject `json:"items"`
	Count int64            `json:"count"`
}

type scheduleItemPage struct {
	Items []models.ScheduleItem `json:"items"`
	Count int64                 `json:"count"`
}

type errorMessage struct {
	Message string `json:"message"`
}
