package handler

import (
	"log/slog"

	"sweets/internal/delivery/api/response"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves customer and administrator conversations.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// ConversationWithAdmin returns the caller's thread with the shop.
func (h *ChatHandler) ConversationWithAdmin(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.chatUC.ConversationWithAdmin(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, messages)
}

// PostToAdmin sends a multipart message ("text", optional "attachment") to the shop.
func (h *ChatHandler) PostToAdmin(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	files := newFormFiles(c)
	defer files.close()

	input, err := messageInput(c, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message, err := h.chatUC.PostToAdmin(c.Request().Context(), caller, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) Inbox(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conversations, err := h.chatUC.Inbox(c.Request().Context(), admin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, conversations)
}

func (h *ChatHandler) Conversation(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	customerID, err := uuidParam(c, "customerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.chatUC.Conversation(c.Request().Context(), admin, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, messages)
}

// Reply sends a multipart message from the administrator to a customer.
func (h *ChatHandler) Reply(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	customerID, err := uuidParam(c, "customerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	files := newFormFiles(c)
	defer files.close()

	input, err := messageInput(c, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message, err := h.chatUC.Post(c.Request().Context(), admin, customerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) DeleteConversation(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	customerID, err := uuidParam(c, "customerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deleted, err := h.chatUC.DeleteConversation(c.Request().Context(), admin, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]int64{"deleted": deleted})
}

func messageInput(c echo.Context, files *formFiles) (*usecase.MessageInput, error) {
	attachment, err := files.get("attachment")
	if err != nil {
		return nil, err
	}

	return &usecase.MessageInput{Text: c.FormValue("text"), Attachment: attachment}, nil
}
