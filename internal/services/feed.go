package services

import (
	"context"

	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/repositories"
)

// FeedService joins posts with their derived counts and the requesting
// user's like state. All likes and comments of the fetched page are
// pulled in one round trip each and folded into maps; authors are
// resolved once per distinct id.
type FeedService struct {
	postRepository    repositories.PostRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
	resolver          *IdentityResolver
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	resolver *IdentityResolver,
) *FeedService {
	return &FeedService{
		postRepository:    postRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
		resolver:          resolver,
	}
}

// ListFeed returns posts newest first, decorated with LikeCount,
// CommentCount and IsLiked. requestingUserID may be empty, in which case
// IsLiked is false everywhere.
func (s *FeedService) ListFeed(ctx context.Context, requestingUserID string, skip, limit int64) ([]models.FeedPost, error) {
	posts, err := s.postRepository.GetAllPosts(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []models.FeedPost{}, nil
	}

	postIDs := make([]string, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID.Hex()
	}

	likes, err := s.likeRepository.GetLikesByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	likeCounts := make(map[string]int64)
	likedByRequester := make(map[string]bool)
	for _, l := range likes {
		likeCounts[l.PostID]++
		if requestingUserID != "" && l.UserID == requestingUserID {
			likedByRequester[l.PostID] = true
		}
	}

	comments, err := s.commentRepository.GetCommentsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	commentCounts := make(map[string]int64)
	for _, c := range comments {
		commentCounts[c.PostID]++
	}

	// One resolution per distinct author, not per post.
	authors := make(map[string]*models.User)
	for _, p := range posts {
		if _, seen := authors[p.UserID]; !seen {
			authors[p.UserID] = s.resolver.Resolve(ctx, p.UserID)
		}
	}

	feed := make([]models.FeedPost, len(posts))
	for i, p := range posts {
		pid := p.ID.Hex()
		userName := "User " + p.UserID
		userAvatar := ""
		if author := authors[p.UserID]; author != nil {
			userName = author.FullName
			userAvatar = author.AvatarURL
		}
		feed[i] = models.FeedPost{
			PostID:       pid,
			UserID:       p.UserID,
			UserName:     userName,
			UserAvatar:   userAvatar,
			Content:      p.Content,
			ImageURL:     p.ImageURL,
			LikeCount:    likeCounts[pid],
			CommentCount: commentCounts[pid],
			IsLiked:      likedByRequester[pid],
			CreatedAt:    p.CreatedAt,
		}
	}
	return feed, nil
}

// CountPosts returns the total post count for pagination metadata
func (s *FeedService) CountPosts(ctx context.Context) (int64, error) {
	return s.postRepository.CountPosts(ctx)
}
