package handler

import (
	"net/http"

	"shopchat/internal/middleware"
	"shopchat/internal/model"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ChatHandler handles chatbot HTTP requests
type ChatHandler struct {
	chat *service.ChatService
	log  zerolog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, log: log}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Error("Message and user_id are required."))
		return
	}

	// a session token wins over the body
	if id, ok := middleware.GetUserID(c); ok {
		req.UserID = id
	}

	if req.Message == "" || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, model.Error("Message and user_id are required."))
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", req.UserID).Msg("chat failed")
		c.JSON(http.StatusInternalServerError, model.Error(msgInternalError))
		return
	}

	if reply.Result.Products == nil {
		reply.Result.Products = []model.Product{}
	}
	c.JSON(http.StatusOK, model.Success(reply.Message, reply.Result))
}
