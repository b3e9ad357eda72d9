package handler

import (
	"io"
	"net/http"
	"testing"
	"time"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatHandlerForTest(t *testing.T) (*ChatHandler, *mockUsecase.MockChatUsecase) {
	chatUC := mockUsecase.NewMockChatUsecase(t)

	return NewChatHandler(ChatHandlerParams{ChatUC: chatUC, Logger: newDiscardLogger()}), chatUC
}

func TestChatHandler_PostToAdmin(t *testing.T) {
	t.Run("text with attachment", func(t *testing.T) {
		h, chatUC := newChatHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.POST("/chat", h.PostToAdmin, asCaller(caller))

		var attachment []byte
		chatUC.EXPECT().
			PostToAdmin(mock.Anything, caller, mock.MatchedBy(func(input *usecase.MessageInput) bool {
				if input.Attachment == nil {
					return false
				}
				if attachment == nil {
					attachment, _ = io.ReadAll(input.Attachment.Content)
				}

				return input.Text == "Segue a foto do bolo" && input.Attachment.Filename == "attachment.png"
			})).
			Return(&entity.ChatMessage{ID: uuid.New(), SenderID: caller.UserID, Text: "Segue a foto do bolo", AttachmentKey: "chat/x.png"}, nil)

		req := newMultipartRequest(t, http.MethodPost, "/chat",
			map[string]string{"text": "Segue a foto do bolo"},
			map[string][]byte{"attachment": tinyPNG},
		)
		rec := serve(e, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, tinyPNG, attachment)
		var got entity.ChatMessage
		decodeData(t, rec, &got)
		assert.Equal(t, "chat/x.png", got.AttachmentKey)
	})

	t.Run("text only", func(t *testing.T) {
		h, chatUC := newChatHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.POST("/chat", h.PostToAdmin, asCaller(caller))

		chatUC.EXPECT().
			PostToAdmin(mock.Anything, caller, &usecase.MessageInput{Text: "Olá"}).
			Return(&entity.ChatMessage{ID: uuid.New(), Text: "Olá"}, nil)

		rec := serve(e, newMultipartRequest(t, http.MethodPost, "/chat", map[string]string{"text": "Olá"}, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("empty message", func(t *testing.T) {
		h, chatUC := newChatHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.POST("/chat", h.PostToAdmin, asCaller(caller))

		chatUC.EXPECT().
			PostToAdmin(mock.Anything, caller, &usecase.MessageInput{}).
			Return(nil, errors.Wrap(domainerrors.ErrValidationFailed, "message needs text or an attachment"))

		rec := serve(e, newMultipartRequest(t, http.MethodPost, "/chat", map[string]string{"text": ""}, nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestChatHandler_Reply(t *testing.T) {
	t.Run("to a customer", func(t *testing.T) {
		h, chatUC := newChatHandlerForTest(t)
		admin := adminPrincipal()
		customerID := uuid.New()
		e := newTestEcho()
		e.POST("/admin/chat/:customerId", h.Reply, asCaller(admin))

		chatUC.EXPECT().
			Post(mock.Anything, admin, customerID, &usecase.MessageInput{Text: "Fica pronto amanhã"}).
			Return(&entity.ChatMessage{ID: uuid.New(), SenderID: admin.UserID, RecipientID: customerID}, nil)

		rec := serve(e, newMultipartRequest(t, http.MethodPost, "/admin/chat/"+customerID.String(), map[string]string{"text": "Fica pronto amanhã"}, nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entity.ChatMessage
		decodeData(t, rec, &got)
		assert.Equal(t, customerID, got.RecipientID)
	})

	t.Run("to the administrator's own account", func(t *testing.T) {
		h, chatUC := newChatHandlerForTest(t)
		admin := adminPrincipal()
		e := newTestEcho()
		e.POST("/admin/chat/:customerId", h.Reply, asCaller(admin))

		chatUC.EXPECT().
			Post(mock.Anything, admin, admin.UserID, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrValidationFailed, "the administrator can only write to customers"))

		rec := serve(e, newMultipartRequest(t, http.MethodPost, "/admin/chat/"+admin.UserID.String(), map[string]string{"text": "teste"}, nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("malformed customer id", func(t *testing.T) {
		h, _ := newChatHandlerForTest(t)
		e := newTestEcho()
		e.POST("/admin/chat/:customerId", h.Reply, asCaller(adminPrincipal()))

		rec := serve(e, newMultipartRequest(t, http.MethodPost, "/admin/chat/maria", map[string]string{"text": "olá"}, nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestChatHandler_Inbox(t *testing.T) {
	h, chatUC := newChatHandlerForTest(t)
	admin := adminPrincipal()
	e := newTestEcho()
	e.GET("/admin/chat", h.Inbox, asCaller(admin))

	lastAt := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)
	chatUC.EXPECT().Inbox(mock.Anything, admin).Return([]*entity.ConversationSummary{
		{CustomerID: uuid.New(), Username: "maria", UnreadCount: 2, LastMessageAt: lastAt},
	}, nil)

	rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/chat", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.ConversationSummary
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].UnreadCount)
	assert.True(t, lastAt.Equal(got[0].LastMessageAt))
}

func TestChatHandler_Conversation(t *testing.T) {
	h, chatUC := newChatHandlerForTest(t)
	admin := adminPrincipal()
	customerID := uuid.New()
	e := newTestEcho()
	e.GET("/admin/chat/:customerId", h.Conversation, asCaller(admin))

	chatUC.EXPECT().Conversation(mock.Anything, admin, customerID).Return([]*entity.ChatMessage{
		{ID: uuid.New(), SenderID: customerID, RecipientID: admin.UserID, Text: "Olá"},
		{ID: uuid.New(), SenderID: admin.UserID, RecipientID: customerID, Text: "Bom dia"},
	}, nil)

	rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/chat/"+customerID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.ChatMessage
	decodeData(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Olá", got[0].Text)
	assert.Equal(t, "Bom dia", got[1].Text)
}

func TestChatHandler_DeleteConversation(t *testing.T) {
	h, chatUC := newChatHandlerForTest(t)
	admin := adminPrincipal()
	customerID := uuid.New()
	e := newTestEcho()
	e.DELETE("/admin/chat/:customerId", h.DeleteConversation, asCaller(admin))

	chatUC.EXPECT().DeleteConversation(mock.Anything, admin, customerID).Return(int64(3), nil)

	rec := serve(e, newJSONRequest(t, http.MethodDelete, "/admin/chat/"+customerID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]int64
	decodeData(t, rec, &got)
	assert.Equal(t, int64(3), got["deleted"])
}

func TestChatHandler_ConversationWithAdmin(t *testing.T) {
	h, _ := newChatHandlerForTest(t)
	e := newTestEcho()
	e.GET("/chat", h.ConversationWithAdmin)

	rec := serve(e, newJSONRequest(t, http.MethodGet, "/chat", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
}
