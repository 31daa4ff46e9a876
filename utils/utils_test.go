package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"islamicdashboard/config"
	"islamicdashboard/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogBuffer_EvictsOldest(t *testing.T) {
	b := NewLogBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Add(models.LogEntry{Message: fmt.Sprintf("m%d", i)})
	}

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "m3", entries[0].Message)
	assert.Equal(t, "m5", entries[2].Message)
	assert.Equal(t, 5, entries[2].ID)
}

func TestLogBuffer_Hook(t *testing.T) {
	b := NewLogBuffer(10)
	now := time.Now()
	require.NoError(t, b.Hook(zapcore.Entry{Level: zapcore.WarnLevel, Message: "careful", Time: now}))
	require.NoError(t, b.Hook(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "broken", LoggerName: "admin", Time: now}))

	entries := b.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, models.LogLevelWarning, entries[0].Level)
	assert.Equal(t, "server", entries[0].Source)
	assert.Equal(t, models.LogLevelError, entries[1].Level)
	assert.Equal(t, "admin", entries[1].Source)
}

func runJSONError(err error) (*httptest.ResponseRecorder, ErrorResponse) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	JSONError(c, err)

	var body ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestJSONError_AppErrors(t *testing.T) {
	w, body := runJSONError(NotFoundError("Dua not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrorResponse{Success: false, Error: CodeNotFound, Message: "Dua not found"}, body)

	w, body = runJSONError(fmt.Errorf("wrapped: %w", ValidationError("Title is required")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title is required", body.Message)
}

func TestJSONError_InternalMessageHiddenInProduction(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	config.AppConfig.Env = "development"
	w, body := runJSONError(errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "disk on fire", body.Message)

	config.AppConfig.Env = "production"
	_, body = runJSONError(errors.New("disk on fire"))
	assert.Equal(t, CodeInternal, body.Error)
	assert.Equal(t, genericInternalMessage, body.Message)

	w, body = runJSONError(Maintenance())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, Maintenance().Message, body.Message)
}

func TestJSONSuccess_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JSONSuccess(c, http.StatusCreated, map[string]int{"id": 3}, WithMessage("Created"), WithCount(1))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":3},"count":1,"message":"Created"}`, w.Body.String())
}
