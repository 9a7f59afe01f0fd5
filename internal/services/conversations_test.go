package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unilink-et/backend/internal/models"
)

type chatFixture struct {
	chats         *mockChatRepository
	notifications *mockNotificationRepository
	users         *mockUserRepository
	svc           *ChatService
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		chats:         &mockChatRepository{},
		notifications: &mockNotificationRepository{},
		users:         &mockUserRepository{},
	}
	resolver := NewIdentityResolver(f.users)
	f.svc = NewChatService(f.chats, resolver, NewNotificationService(f.notifications, resolver))
	return f
}

func TestSendMessage_EmitsTruncatedNotification(t *testing.T) {
	f := newChatFixture()
	f.chats.On("CreateMessage", mock.Anything, mock.AnythingOfType("*models.ChatMessage")).Return(nil)
	stubUnresolvedActor(f.users, "u1")
	captured := captureNotification(f.notifications)

	long := strings.Repeat("x", 150)
	msg, err := f.svc.SendMessage(context.Background(), "u1", models.SendMessageRequest{
		ReceiverID: "u2",
		Content:    long,
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", msg.SenderID)
	assert.Equal(t, "u2", msg.ReceiverID)

	require.NotNil(t, *captured)
	n := *captured
	assert.Equal(t, "u2", n.UserID)
	assert.Equal(t, models.NotificationTypeMessage, n.Type)
	assert.Equal(t, "New Message", n.Title)
	assert.Equal(t, strings.Repeat("x", 120), n.Message)
	assert.False(t, strings.HasSuffix(n.Message, "..."))
}

func TestSendMessage_NotificationFailureDoesNotFailSend(t *testing.T) {
	f := newChatFixture()
	f.chats.On("CreateMessage", mock.Anything, mock.AnythingOfType("*models.ChatMessage")).Return(nil)
	stubUnresolvedActor(f.users, "u1")
	f.notifications.On("CreateNotification", mock.Anything, mock.Anything).Return(errors.New("write failed"))

	msg, err := f.svc.SendMessage(context.Background(), "u1", models.SendMessageRequest{
		ReceiverID: "u2",
		Content:    "hey",
	})

	require.NoError(t, err)
	require.NotNil(t, msg)
}

func TestGetThread_MarksReceivedMessagesRead(t *testing.T) {
	f := newChatFixture()
	thread := []models.ChatMessage{
		{SenderID: "u2", ReceiverID: "u1", Content: "hi"},
		{SenderID: "u1", ReceiverID: "u2", Content: "hello"},
	}
	f.chats.On("GetThread", mock.Anything, "u1", "u2").Return(thread, nil)
	f.chats.On("MarkThreadRead", mock.Anything, "u2", "u1").Return(nil)

	got, err := f.svc.GetThread(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, thread, got)
	f.chats.AssertExpectations(t)
}

func TestListConversations_DedupsPerCounterpart(t *testing.T) {
	f := newChatFixture()
	now := time.Now()
	// Newest first, the way the repository returns them. The oldest
	// message with u2 must not overwrite the entry made by the newest.
	f.chats.On("GetRecentByUser", mock.Anything, "u1", int64(conversationScanLimit)).Return([]models.ChatMessage{
		{SenderID: "u1", ReceiverID: "u2", Content: "see you there", CreatedAt: now},
		{SenderID: "u3", ReceiverID: "u1", Content: "is the textbook still available?", CreatedAt: now.Add(-time.Minute)},
		{SenderID: "u2", ReceiverID: "u1", Content: "sure, when?", CreatedAt: now.Add(-2 * time.Minute)},
	}, nil)
	stubUnresolvedActor(f.users, "u2")
	stubUnresolvedActor(f.users, "u3")
	f.chats.On("CountUnreadFrom", mock.Anything, "u2", "u1").Return(int64(0), nil)
	f.chats.On("CountUnreadFrom", mock.Anything, "u3", "u1").Return(int64(1), nil)

	conversations, err := f.svc.ListConversations(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, "u2", conversations[0].UserID)
	assert.Equal(t, "see you there", conversations[0].LastMessage)
	assert.Equal(t, now, conversations[0].LastMessageTime)
	assert.Equal(t, "u3", conversations[1].UserID)
	assert.Equal(t, int64(1), conversations[1].UnreadCount)
}

func TestListConversations_ResolvesCounterpartProfile(t *testing.T) {
	f := newChatFixture()
	f.chats.On("GetRecentByUser", mock.Anything, "u1", int64(conversationScanLimit)).Return([]models.ChatMessage{
		{SenderID: "u2", ReceiverID: "u1", Content: "hi"},
	}, nil)
	f.users.On("GetUserByID", mock.Anything, "u2").Return(nil, models.ErrNotFound)
	f.users.On("GetUserByUserID", mock.Anything, "u2").Return(&models.User{
		UserID:    "u2",
		FullName:  "Dawit Bekele",
		AvatarURL: "https://cdn.example.com/u2.png",
	}, nil)
	f.chats.On("CountUnreadFrom", mock.Anything, "u2", "u1").Return(int64(0), nil)

	conversations, err := f.svc.ListConversations(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "Dawit Bekele", conversations[0].UserName)
	assert.Equal(t, "https://cdn.example.com/u2.png", conversations[0].UserAvatar)
}

func TestListConversations_PlaceholderForUnknownCounterpart(t *testing.T) {
	f := newChatFixture()
	f.chats.On("GetRecentByUser", mock.Anything, "u1", int64(conversationScanLimit)).Return([]models.ChatMessage{
		{SenderID: "ghost", ReceiverID: "u1", Content: "boo"},
	}, nil)
	stubUnresolvedActor(f.users, "ghost")
	f.chats.On("CountUnreadFrom", mock.Anything, "ghost", "u1").Return(int64(1), nil)

	conversations, err := f.svc.ListConversations(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "User ghost", conversations[0].UserName)
	assert.Equal(t, "", conversations[0].UserAvatar)
}

func TestListConversations_EmptyHistory(t *testing.T) {
	f := newChatFixture()
	f.chats.On("GetRecentByUser", mock.Anything, "u1", int64(conversationScanLimit)).Return([]models.ChatMessage{}, nil)

	conversations, err := f.svc.ListConversations(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, conversations)
}
