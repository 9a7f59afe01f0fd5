package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/unilink-et/backend/internal/models"
)

// Testify mocks of the repository interfaces the services consume.

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepository) GetUserByUserID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepository) GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	args := m.Called(ctx, studentID)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	args := m.Called(ctx, identifier)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepository) UpdateUser(ctx context.Context, id string, fullName, email string) error {
	return m.Called(ctx, id, fullName, email).Error(0)
}
func (m *mockUserRepository) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPostRepository struct{ mock.Mock }

func (m *mockPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *mockPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*models.Post); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPostRepository) GetAllPosts(ctx context.Context, skip, limit int64) ([]models.Post, error) {
	args := m.Called(ctx, skip, limit)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}
func (m *mockPostRepository) CountPosts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockLikeRepository struct{ mock.Mock }

func (m *mockLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	return m.Called(ctx, like).Error(0)
}
func (m *mockLikeRepository) DeleteLike(ctx context.Context, postID, userID string) error {
	return m.Called(ctx, postID, userID).Error(0)
}
func (m *mockLikeRepository) HasUserLikedPost(ctx context.Context, postID, userID string) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *mockLikeRepository) GetLikesCountByPostID(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockLikeRepository) GetLikesByPostIDs(ctx context.Context, postIDs []string) ([]models.Like, error) {
	args := m.Called(ctx, postIDs)
	likes, _ := args.Get(0).([]models.Like)
	return likes, args.Error(1)
}

type mockCommentRepository struct{ mock.Mock }

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return m.Called(ctx, comment).Error(0)
}
func (m *mockCommentRepository) GetCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]models.Comment)
	return comments, args.Error(1)
}
func (m *mockCommentRepository) GetCommentsByPostIDs(ctx context.Context, postIDs []string) ([]models.Comment, error) {
	args := m.Called(ctx, postIDs)
	comments, _ := args.Get(0).([]models.Comment)
	return comments, args.Error(1)
}
func (m *mockCommentRepository) GetCommentsCountByPostID(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

type mockChatRepository struct{ mock.Mock }

func (m *mockChatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *mockChatRepository) GetThread(ctx context.Context, userID, otherID string) ([]models.ChatMessage, error) {
	args := m.Called(ctx, userID, otherID)
	messages, _ := args.Get(0).([]models.ChatMessage)
	return messages, args.Error(1)
}
func (m *mockChatRepository) GetRecentByUser(ctx context.Context, userID string, limit int64) ([]models.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	messages, _ := args.Get(0).([]models.ChatMessage)
	return messages, args.Error(1)
}
func (m *mockChatRepository) MarkThreadRead(ctx context.Context, senderID, receiverID string) error {
	return m.Called(ctx, senderID, receiverID).Error(0)
}
func (m *mockChatRepository) CountUnreadFrom(ctx context.Context, senderID, receiverID string) (int64, error) {
	args := m.Called(ctx, senderID, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotificationRepository struct{ mock.Mock }

func (m *mockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return m.Called(ctx, notification).Error(0)
}
func (m *mockNotificationRepository) GetByUserID(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit)
	notifications, _ := args.Get(0).([]models.Notification)
	return notifications, args.Error(1)
}
func (m *mockNotificationRepository) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, notificationID string) error {
	return m.Called(ctx, notificationID).Error(0)
}
func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *mockNotificationRepository) DeleteLikeNotification(ctx context.Context, postID, actorID string) error {
	return m.Called(ctx, postID, actorID).Error(0)
}
