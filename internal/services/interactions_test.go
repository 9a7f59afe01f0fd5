package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unilink-et/backend/internal/models"
)

type interactionFixture struct {
	posts         *mockPostRepository
	likes         *mockLikeRepository
	comments      *mockCommentRepository
	notifications *mockNotificationRepository
	users         *mockUserRepository
	svc           *InteractionService
}

func newInteractionFixture() *interactionFixture {
	f := &interactionFixture{
		posts:         &mockPostRepository{},
		likes:         &mockLikeRepository{},
		comments:      &mockCommentRepository{},
		notifications: &mockNotificationRepository{},
		users:         &mockUserRepository{},
	}
	notifier := NewNotificationService(f.notifications, NewIdentityResolver(f.users))
	f.svc = NewInteractionService(f.posts, f.likes, f.comments, notifier)
	return f
}

func TestToggleLike_PostNotFound(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "missing").Return(nil, fmt.Errorf("post: %w", models.ErrNotFound))

	_, err := f.svc.ToggleLike(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestToggleLike_LikeEmitsNotification(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "p1").Return(&models.Post{UserID: "u2"}, nil)
	f.likes.On("HasUserLikedPost", mock.Anything, "p1", "u1").Return(false, nil)
	f.likes.On("CreateLike", mock.Anything, mock.AnythingOfType("*models.Like")).Return(nil)
	f.likes.On("GetLikesCountByPostID", mock.Anything, "p1").Return(int64(1), nil)
	f.users.On("GetUserByID", mock.Anything, "u1").Return(nil, models.ErrNotFound)
	f.users.On("GetUserByUserID", mock.Anything, "u1").Return(&models.User{UserID: "u1", FullName: "Abel Tesfaye"}, nil)
	captured := captureNotification(f.notifications)

	result, err := f.svc.ToggleLike(context.Background(), "p1", "u1")

	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
	assert.Equal(t, "p1", result.PostID)

	require.NotNil(t, *captured)
	n := *captured
	assert.Equal(t, "u2", n.UserID)
	assert.Equal(t, "u1", n.ActorID)
	assert.Equal(t, models.NotificationTypeLike, n.Type)
	assert.Equal(t, "p1", n.PostID)
}

func TestToggleLike_UnlikeRetractsNotification(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "p1").Return(&models.Post{UserID: "u2"}, nil)
	f.likes.On("HasUserLikedPost", mock.Anything, "p1", "u1").Return(true, nil)
	f.likes.On("DeleteLike", mock.Anything, "p1", "u1").Return(nil)
	f.likes.On("GetLikesCountByPostID", mock.Anything, "p1").Return(int64(0), nil)
	f.notifications.On("DeleteLikeNotification", mock.Anything, "p1", "u1").Return(nil)

	result, err := f.svc.ToggleLike(context.Background(), "p1", "u1")

	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.LikeCount)
	f.notifications.AssertCalled(t, "DeleteLikeNotification", mock.Anything, "p1", "u1")
	f.notifications.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestToggleLike_RoundTripRestoresState(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "p1").Return(&models.Post{UserID: "u2"}, nil)

	// First toggle: not yet liked, insert succeeds, count goes to 1.
	f.likes.On("HasUserLikedPost", mock.Anything, "p1", "u1").Return(false, nil).Once()
	f.likes.On("CreateLike", mock.Anything, mock.AnythingOfType("*models.Like")).Return(nil).Once()
	f.likes.On("GetLikesCountByPostID", mock.Anything, "p1").Return(int64(1), nil).Once()

	// Second toggle: liked, delete succeeds, count returns to 0.
	f.likes.On("HasUserLikedPost", mock.Anything, "p1", "u1").Return(true, nil).Once()
	f.likes.On("DeleteLike", mock.Anything, "p1", "u1").Return(nil).Once()
	f.likes.On("GetLikesCountByPostID", mock.Anything, "p1").Return(int64(0), nil).Once()

	f.users.On("GetUserByID", mock.Anything, "u1").Return(&models.User{UserID: "u1", FullName: "Abel Tesfaye"}, nil)
	f.notifications.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)
	f.notifications.On("DeleteLikeNotification", mock.Anything, "p1", "u1").Return(nil)

	first, err := f.svc.ToggleLike(context.Background(), "p1", "u1")
	require.NoError(t, err)
	second, err := f.svc.ToggleLike(context.Background(), "p1", "u1")
	require.NoError(t, err)

	assert.True(t, first.Liked)
	assert.Equal(t, int64(1), first.LikeCount)
	assert.False(t, second.Liked)
	assert.Equal(t, int64(0), second.LikeCount)
	f.likes.AssertExpectations(t)
}

func TestToggleLike_DuplicateInsertCollapses(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "p1").Return(&models.Post{UserID: "u2"}, nil)
	f.likes.On("HasUserLikedPost", mock.Anything, "p1", "u1").Return(false, nil)
	f.likes.On("CreateLike", mock.Anything, mock.AnythingOfType("*models.Like")).
		Return(fmt.Errorf("post already liked: %w", models.ErrConflict))
	f.likes.On("GetLikesCountByPostID", mock.Anything, "p1").Return(int64(1), nil)

	result, err := f.svc.ToggleLike(context.Background(), "p1", "u1")

	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
	// The concurrent winner already emitted; the loser must not.
	f.notifications.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestAddComment_EmitsTruncatedNotification(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "p1").Return(&models.Post{UserID: "u2"}, nil)
	f.comments.On("CreateComment", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)
	stubUnresolvedActor(f.users, "u1")
	captured := captureNotification(f.notifications)

	content := "Great post! " + strings.Repeat("y", 80)
	comment, err := f.svc.AddComment(context.Background(), "p1", "u1", content)

	require.NoError(t, err)
	assert.Equal(t, "u2", comment.PostOwnerID)
	assert.Equal(t, content, comment.Content)

	require.NotNil(t, *captured)
	n := *captured
	assert.Equal(t, models.NotificationTypeComment, n.Type)
	assert.Equal(t, "u2", n.UserID)
	assert.Equal(t, string([]rune(content)[:50])+"...", n.Message)
}

func TestAddComment_OnOwnPostSkipsNotification(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "p1").Return(&models.Post{UserID: "u1"}, nil)
	f.comments.On("CreateComment", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)

	_, err := f.svc.AddComment(context.Background(), "p1", "u1", "note to self")

	require.NoError(t, err)
	f.notifications.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestListComments_PostNotFound(t *testing.T) {
	f := newInteractionFixture()
	f.posts.On("GetPostByID", mock.Anything, "missing").Return(nil, fmt.Errorf("post: %w", models.ErrNotFound))

	_, err := f.svc.ListComments(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
