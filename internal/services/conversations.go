package services

import (
	"context"

	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/repositories"
)

// conversationScanLimit caps how many recent messages are walked when
// aggregating conversations.
const conversationScanLimit = 50

// ChatService records direct messages and collapses a user's message
// history into one conversation entry per counterpart.
type ChatService struct {
	chatRepository repositories.ChatRepository
	resolver       *IdentityResolver
	notifier       notifier
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo repositories.ChatRepository, resolver *IdentityResolver, notifier notifier) *ChatService {
	return &ChatService{
		chatRepository: chatRepo,
		resolver:       resolver,
		notifier:       notifier,
	}
}

// SendMessage stores a message and fans out its notification
func (s *ChatService) SendMessage(ctx context.Context, senderID string, req models.SendMessageRequest) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.chatRepository.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	_ = s.notifier.Emit(ctx, EmitInput{
		RecipientID: req.ReceiverID,
		Type:        models.NotificationTypeMessage,
		ActorID:     senderID,
		Body:        req.Content,
	})
	return msg, nil
}

// GetThread returns the full two-party history oldest first and marks the
// messages the user received in it as read.
func (s *ChatService) GetThread(ctx context.Context, userID, otherID string) ([]models.ChatMessage, error) {
	messages, err := s.chatRepository.GetThread(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if err := s.chatRepository.MarkThreadRead(ctx, otherID, userID); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListConversations walks the user's most recent messages newest first
// and keeps the first message seen per distinct counterpart — an entry is
// never overwritten by an older message. Unresolvable counterparts get a
// placeholder record instead of being dropped.
func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	messages, err := s.chatRepository.GetRecentByUser(ctx, userID, conversationScanLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	conversations := make([]models.Conversation, 0, len(messages))
	for _, m := range messages {
		counterpart := m.ReceiverID
		if m.SenderID != userID {
			counterpart = m.SenderID
		}
		if seen[counterpart] {
			continue
		}
		seen[counterpart] = true

		name := "User " + counterpart
		avatar := ""
		if user := s.resolver.Resolve(ctx, counterpart); user != nil {
			name = user.FullName
			avatar = user.AvatarURL
		}

		unread, err := s.chatRepository.CountUnreadFrom(ctx, counterpart, userID)
		if err != nil {
			return nil, err
		}

		conversations = append(conversations, models.Conversation{
			UserID:          counterpart,
			UserName:        name,
			UserAvatar:      avatar,
			LastMessage:     m.Content,
			LastMessageTime: m.CreatedAt,
			UnreadCount:     unread,
		})
	}
	return conversations, nil
}
