package handler

import (
	"errors"
	"net/http"

	"voiceorder/internal/logger"
	"voiceorder/internal/model"
	"voiceorder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const errNoInput = "No input provided"

// VoiceOrderHandler handles utterance classification requests
type VoiceOrderHandler struct {
	assistant *service.Assistant
}

// NewVoiceOrderHandler creates a new voice order handler
func NewVoiceOrderHandler(assistant *service.Assistant) *VoiceOrderHandler {
	return &VoiceOrderHandler{
		assistant: assistant,
	}
}

// Handle handles POST /api/voice-order
func (h *VoiceOrderHandler) Handle(c *gin.Context) {
	var req model.VoiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoInput})
		return
	}

	reply, err := h.assistant.Handle(c.Request.Context(), req.UserID, req.Input)
	if errors.Is(err, service.ErrEmptyUtterance) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoInput})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Voice order failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process input"})
		return
	}

	response := model.VoiceOrderResponse{
		Response:   reply.Response,
		Intent:     reply.Result.Label,
		Source:     reply.Result.Source,
		MatchScore: reply.Result.Score,
		UserID:     reply.UserID,
		RequestID:  logger.RequestID(c),
	}
	if reply.Sentiment != nil {
		label := reply.Sentiment.Label
		score := reply.Sentiment.Score
		response.Sentiment = &label
		response.Score = &score
	}

	c.JSON(http.StatusOK, response)
}
