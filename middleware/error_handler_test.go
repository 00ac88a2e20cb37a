package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"carelink/models"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func newErrorHandlerRouter(environment string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := gin.New()
	router.Use(NewErrorHandler(environment, logger).Handle())
	router.GET("/test", handler)
	return router
}

func performErrorHandlerRequest(router *gin.Engine) (*httptest.ResponseRecorder, models.ErrorResponse) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(recorder, req)

	var body models.ErrorResponse
	_ = json.Unmarshal(recorder.Body.Bytes(), &body)
	return recorder, body
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	router := newErrorHandlerRouter("production", func(c *gin.Context) {
		panic("boom")
	})

	recorder, body := performErrorHandlerRequest(router)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "PANIC_RECOVERED", body.Code)
	assert.Nil(t, body.Details)
}

func TestErrorHandlerPanicIncludesStackInDevelopment(t *testing.T) {
	router := newErrorHandlerRouter("development", func(c *gin.Context) {
		panic("boom")
	})

	recorder, body := performErrorHandlerRequest(router)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.NotNil(t, body.Details)
	assert.Contains(t, body.Details, "stack")
}

func TestErrorHandlerMapsServiceError(t *testing.T) {
	router := newErrorHandlerRouter("production", func(c *gin.Context) {
		c.Error(utils.NewPatientNotFoundError())
	})

	recorder, body := performErrorHandlerRequest(router)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, utils.ErrCodeNotFound, body.Code)
	assert.Equal(t, "Patient profile not found", body.Message)
}

func TestErrorHandlerMapsMongoNoDocuments(t *testing.T) {
	router := newErrorHandlerRouter("production", func(c *gin.Context) {
		c.Error(mongo.ErrNoDocuments)
	})

	recorder, body := performErrorHandlerRequest(router)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.Code)
}

func TestErrorHandlerMapsUnknownError(t *testing.T) {
	router := newErrorHandlerRouter("production", func(c *gin.Context) {
		c.Error(assert.AnError)
	})

	recorder, body := performErrorHandlerRequest(router)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "UNKNOWN_ERROR", body.Code)
	assert.Nil(t, body.Details)
}
