package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shopchat/internal/model"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const msgHistoryFieldsRequired = "user_id, message, and is_user_message (boolean) are required."

// HistoryHandler handles chat history HTTP requests
type HistoryHandler struct {
	history *service.HistoryService
	log     zerolog.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history *service.HistoryService, log zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{history: history, log: log}
}

// Save handles POST /chat/history
func (h *HistoryHandler) Save(c *gin.Context) {
	var req model.SaveHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Error(msgHistoryFieldsRequired))
		return
	}

	err := h.history.Save(c.Request.Context(), req)
	if errors.Is(err, service.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, model.Error(msgHistoryFieldsRequired))
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("saving chat history failed")
		c.JSON(http.StatusInternalServerError, model.Error("Failed to save chat history."))
		return
	}

	c.JSON(http.StatusCreated, model.Success("Chat entry saved.", nil))
}

// List handles GET /chat/history?user_id=
func (h *HistoryHandler) List(c *gin.Context) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, model.Error("user_id parameter is required."))
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Error("user_id must be an integer."))
		return
	}

	entries, err := h.history.History(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("loading chat history failed")
		c.JSON(http.StatusInternalServerError, model.Error("Failed to retrieve chat history."))
		return
	}
	if entries == nil {
		entries = []model.ChatHistoryEntry{}
	}

	c.JSON(http.StatusOK, model.Success("Chat history retrieved.", model.ChatHistory{History: entries}))
}
