package services

import (
	"context"
	"errors"

	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/repositories"
)

// notifier is the fan-out surface the recorders need. Satisfied by
// NotificationService.
type notifier interface {
	Emit(ctx context.Context, in EmitInput) error
	RetractLike(ctx context.Context, postID, actorID string) error
}

// InteractionService records atomic social actions — like toggles and
// comments — and fans out their notifications. Counts are always derived
// by counting like/comment records after the mutation, never cached.
type InteractionService struct {
	postRepository    repositories.PostRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
	notifier          notifier
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(
	postRepo repositories.PostRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	notifier notifier,
) *InteractionService {
	return &InteractionService{
		postRepository:    postRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
		notifier:          notifier,
	}
}

// ToggleLike flips the like state of a user on a post. Repeated calls
// alternate between liked and not liked; the returned count is recounted
// after the mutation.
func (s *InteractionService) ToggleLike(ctx context.Context, postID, userID string) (*models.ToggleLikeResult, error) {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likeRepository.HasUserLikedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.likeRepository.DeleteLike(ctx, postID, userID); err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		// Unliking retracts the like's notification as well.
		_ = s.notifier.RetractLike(ctx, postID, userID)

		count, err := s.likeRepository.GetLikesCountByPostID(ctx, postID)
		if err != nil {
			return nil, err
		}
		return &models.ToggleLikeResult{PostID: postID, Liked: false, LikeCount: count}, nil
	}

	like := &models.Like{PostID: postID, UserID: userID}
	switch err := s.likeRepository.CreateLike(ctx, like); {
	case err == nil:
		// Notification failure is accepted: the like is the record of
		// truth, the notification a convenience signal.
		_ = s.notifier.Emit(ctx, EmitInput{
			RecipientID: post.UserID,
			Type:        models.NotificationTypeLike,
			ActorID:     userID,
			PostID:      postID,
		})
	case errors.Is(err, models.ErrConflict):
		// A concurrent toggle won the insert. Collapse to "already liked".
	default:
		return nil, err
	}

	count, err := s.likeRepository.GetLikesCountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &models.ToggleLikeResult{PostID: postID, Liked: true, LikeCount: count}, nil
}

// AddComment appends a comment to a post and fans out its notification
func (s *InteractionService) AddComment(ctx context.Context, postID, userID, content string) (*models.Comment, error) {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:      postID,
		UserID:      userID,
		PostOwnerID: post.UserID,
		Content:     content,
	}
	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	_ = s.notifier.Emit(ctx, EmitInput{
		RecipientID: post.UserID,
		Type:        models.NotificationTypeComment,
		ActorID:     userID,
		Body:        content,
		PostID:      postID,
	})
	return comment, nil
}

// ListComments returns a post's comments, oldest first
func (s *InteractionService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.postRepository.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepository.GetCommentsByPostID(ctx, postID)
}
