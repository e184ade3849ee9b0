package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/repository"
	"github.com/soran-institute/institute-api/internal/service"
)

func backupRouter(store repository.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBackupHandler(service.NewBackupService(store, nil, zap.NewNop()))
	r.POST("/api/backup", h.Receive)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBackupReceiveMergesBatch(t *testing.T) {
	store := repository.NewMemoryStore()
	r := backupRouter(store)

	w := postJSON(r, "/api/backup", `{
		"source": "teacher-app",
		"syncType": "daily",
		"students": [{"id": "s1", "name": "Ali", "fatherName": "Omar", "level": "1", "group": "A"}],
		"attendance": [{"studentId": "s1", "date": "2024-01-01", "course": "Math", "present": false}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BackupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Summary.ImportedStudents)
	assert.Equal(t, 1, resp.Summary.ImportedAttendance)
	assert.NotEmpty(t, resp.SyncID)

	students, _ := store.ReadStudents(context.Background())
	assert.Len(t, students, 1)
}

func TestBackupReceiveRejectsMalformedJSON(t *testing.T) {
	store := repository.NewMemoryStore()
	r := backupRouter(store)

	w := postJSON(r, "/api/backup", `{"students": [`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	// A rejected batch leaves no trace, not even a sync record.
	history, _ := store.ReadSyncHistory(context.Background())
	assert.Empty(t, history)
}

func TestBackupReceiveRejectsNullBody(t *testing.T) {
	store := repository.NewMemoryStore()
	r := backupRouter(store)

	w := postJSON(r, "/api/backup", `null`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	students, _ := store.ReadStudents(context.Background())
	attendance, _ := store.ReadAttendance(context.Background())
	history, _ := store.ReadSyncHistory(context.Background())
	assert.Empty(t, students)
	assert.Empty(t, attendance)
	assert.Empty(t, history)
}

func TestBackupReceiveTestPing(t *testing.T) {
	store := repository.NewMemoryStore()
	r := backupRouter(store)

	w := postJSON(r, "/api/backup", `{"test": true}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BackupTestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Test)

	history, _ := store.ReadSyncHistory(context.Background())
	assert.Empty(t, history)
}
