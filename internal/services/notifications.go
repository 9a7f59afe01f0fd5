package services

import (
	"context"

	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/repositories"
)

const (
	// Notification body limits. Comment previews get an ellipsis marker
	// when cut; message previews are cut silently.
	commentPreviewLimit = 50
	messagePreviewLimit = 120

	// fallbackActorName is shown when the actor cannot be resolved.
	fallbackActorName = "Someone"

	notificationListLimit = 100
)

// EmitInput describes the primary action a notification derives from.
type EmitInput struct {
	RecipientID string
	Type        string
	ActorID     string
	Body        string // comment or message text, unused for likes
	PostID      string
	ItemID      string
}

// NotificationService derives notification records from primary actions
// and owns their read-state transitions.
type NotificationService struct {
	notificationRepository repositories.NotificationRepository
	resolver               *IdentityResolver
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifRepo repositories.NotificationRepository, resolver *IdentityResolver) *NotificationService {
	return &NotificationService{
		notificationRepository: notifRepo,
		resolver:               resolver,
	}
}

// Emit creates a notification for the recipient. Self-notifications are a
// no-op: nothing is created when the actor is the recipient.
func (s *NotificationService) Emit(ctx context.Context, in EmitInput) error {
	if in.RecipientID == "" || in.RecipientID == in.ActorID {
		return nil
	}

	actorName := fallbackActorName
	actorAvatar := ""
	if actor := s.resolver.Resolve(ctx, in.ActorID); actor != nil {
		actorName = actor.FullName
		actorAvatar = actor.AvatarURL
	}

	var title, message string
	switch in.Type {
	case models.NotificationTypeLike:
		title = "New Like"
		message = "liked your post"
	case models.NotificationTypeComment:
		title = "New Comment"
		message = truncateWithEllipsis(in.Body, commentPreviewLimit)
	case models.NotificationTypeMessage:
		title = "New Message"
		message = truncate(in.Body, messagePreviewLimit)
	default:
		title = "Notification"
		message = in.Body
	}

	notification := &models.Notification{
		UserID:      in.RecipientID,
		Type:        in.Type,
		Title:       title,
		Message:     message,
		ActorID:     in.ActorID,
		ActorName:   actorName,
		ActorAvatar: actorAvatar,
		PostID:      in.PostID,
		ItemID:      in.ItemID,
	}
	return s.notificationRepository.CreateNotification(ctx, notification)
}

// RetractLike removes the like notification an actor produced on a post,
// so removing a like also removes its fan-out.
func (s *NotificationService) RetractLike(ctx context.Context, postID, actorID string) error {
	return s.notificationRepository.DeleteLikeNotification(ctx, postID, actorID)
}

// List returns the recipient's recent notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notificationRepository.GetByUserID(ctx, userID, notificationListLimit)
}

// UnreadCount returns the recipient's unread notification count
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepository.GetUnreadCount(ctx, userID)
}

// MarkRead flips isRead on one notification; missing id is NotFound
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.notificationRepository.MarkAsRead(ctx, notificationID)
}

// MarkAllRead flips isRead on every unread notification of the recipient.
// Zero updates is still success.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllAsRead(ctx, userID)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func truncateWithEllipsis(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
