package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", "json", &buf)
	t.Cleanup(func() { Setup("info", "json", os.Stderr) })

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	logrus.WithField("user_id", "u1").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "u1", entry["user_id"])
}

func TestSetup_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup("chatty", "text", &buf)
	t.Cleanup(func() { Setup("info", "json", os.Stderr) })

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.Contains(t, buf.String(), "Unknown log level")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	Setup("info", "json", &buf)
	t.Cleanup(func() { Setup("info", "json", os.Stderr) })

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry[RequestIDKey])
	assert.Equal(t, "/ping", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}
