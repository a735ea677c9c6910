package handler

import (
	"net/http"

	"voiceorder/internal/model"
	"voiceorder/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	assistant *service.Assistant
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(assistant *service.Assistant) *FeedbackHandler {
	return &FeedbackHandler{
		assistant: assistant,
	}
}

// Submit handles POST /api/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.assistant.RecordFeedback(req.UserID, req.Feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No feedback provided"})
		return
	}

	response := model.FeedbackResponse{
		Success: true,
		Message: "Thank you for your feedback!",
	}

	c.JSON(http.StatusOK, response)
}
