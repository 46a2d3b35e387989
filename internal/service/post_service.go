package service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"myblog/internal/apperrors"
	"myblog/internal/models"
	"myblog/internal/repository"
)

// PostUpdateRequest - patch-семантика: nil поле оставляет прежнее значение
type PostUpdateRequest struct {
	PostTitle   *string
	PostContent *string
	PostImage   *string
}

type PostService interface {
	CreatePost(ctx context.Context, userID int, title, content string, imageURL *string) (*models.PostView, error)
	GetPost(ctx context.Context, postID int) (*models.PostView, error)
	GetAllPosts(ctx context.Context) ([]models.PostView, error)
	GetUserPosts(ctx context.Context, userID int) ([]models.PostView, error)
	UpdatePost(ctx context.Context, postID, userID int, req PostUpdateRequest) (*models.PostView, error)
	DeletePost(ctx context.Context, postID, userID int) error
	GetPostsByHashtag(ctx context.Context, hashtag string) ([]models.PostView, error)
	AddComment(ctx context.Context, postID, userID int, content string) (*models.PostView, error)
	EditComment(ctx context.Context, commentID, userID int, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID int) error
	LikePost(ctx context.Context, postID, userID int) (*models.PostView, error)
	RemoveLike(ctx context.Context, postID, userID int) (*models.PostView, error)
	DislikePost(ctx context.Context, postID, userID int) (*models.PostView, error)
	RemoveDislike(ctx context.Context, postID, userID int) (*models.PostView, error)
}

type postService struct {
	postRepo    repository.PostRepository
	hashtagRepo repository.HashtagRepository
	commentRepo repository.CommentRepository
	reactions   repository.ReactionRepository
	userRepo    repository.UserRepository
	images      ImageService
}

func NewPostService(
	postRepo repository.PostRepository,
	hashtagRepo repository.HashtagRepository,
	commentRepo repository.CommentRepository,
	reactions repository.ReactionRepository,
	userRepo repository.UserRepository,
	images ImageService,
) PostService {
	return &postService{
		postRepo:    postRepo,
		hashtagRepo: hashtagRepo,
		commentRepo: commentRepo,
		reactions:   reactions,
		userRepo:    userRepo,
		images:      images,
	}
}

// хештег - #слово на границе токена
var hashtagPattern = regexp.MustCompile(`(^|\s)#(\w+)`)

// FindHashtags - извлекает хештеги из текста поста: нижний регистр, без
// дубликатов, порядок первого вхождения
func FindHashtags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool, len(matches))
	var hashtags []string
	for _, match := range matches {
		hashtag := strings.ToLower(strings.TrimSpace(match[2]))
		if hashtag == "" || seen[hashtag] {
			continue
		}
		seen[hashtag] = true
		hashtags = append(hashtags, hashtag)
	}

	return hashtags
}

func (p *postService) CreatePost(ctx context.Context, userID int, title, content string, imageURL *string) (*models.PostView, error) {
	post := &models.Post{
		UserID:      userID,
		PostTitle:   title,
		PostContent: content,
		PostImage:   imageURL,
	}

	hashtags := FindHashtags(content)

	if err := p.postRepo.Create(ctx, post, hashtags); err != nil {
		return nil, err
	}

	return p.assemblePostView(ctx, post)
}

func (p *postService) GetPost(ctx context.Context, postID int) (*models.PostView, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return p.assemblePostView(ctx, post)
}

func (p *postService) GetAllPosts(ctx context.Context) ([]models.PostView, error) {
	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return p.assemblePostViews(ctx, posts)
}

func (p *postService) GetUserPosts(ctx context.Context, userID int) ([]models.PostView, error) {
	posts, err := p.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return p.assemblePostViews(ctx, posts)
}

func (p *postService) UpdatePost(ctx context.Context, postID, userID int, req PostUpdateRequest) (*models.PostView, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, apperrors.OperationForbidden("You are not allowed to make an edit to this post.")
	}

	if req.PostTitle != nil {
		post.PostTitle = *req.PostTitle
	}
	if req.PostContent != nil {
		post.PostContent = *req.PostContent
	}

	if req.PostImage != nil {
		oldImage := post.PostImage
		post.PostImage = req.PostImage

		if oldImage != nil {
			if err := p.images.DeleteByURL(ctx, *oldImage); err != nil {
				log.Printf("Предупреждение: не удалось удалить старое изображение поста: %v", err)
			}
		}
	}

	hashtags := FindHashtags(post.PostContent)

	if err := p.postRepo.Update(ctx, post, hashtags); err != nil {
		return nil, err
	}

	return p.assemblePostView(ctx, post)
}

func (p *postService) DeletePost(ctx context.Context, postID, userID int) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return apperrors.OperationForbidden("You are not allowed to make an edit to this post.")
	}

	if post.PostImage != nil {
		if err := p.images.DeleteByURL(ctx, *post.PostImage); err != nil {
			return err
		}
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) GetPostsByHashtag(ctx context.Context, hashtag string) ([]models.PostView, error) {
	hashtag = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(hashtag, "#", "")))

	postIDs, err := p.hashtagRepo.GetPostIDsByHashtag(ctx, hashtag)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(postIDs))
	for _, postID := range postIDs {
		view, err := p.GetPost(ctx, postID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

func (p *postService) AddComment(ctx context.Context, postID, userID int, content string) (*models.PostView, error) {
	// пост должен существовать
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:         userID,
		PostID:         postID,
		CommentContent: content,
	}

	if err := p.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return p.GetPost(ctx, postID)
}

func (p *postService) EditComment(ctx context.Context, commentID, userID int, content string) (*models.Comment, error) {
	comment, err := p.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != userID {
		return nil, apperrors.OperationForbidden("You are not allowed to edit this comment.")
	}

	if err := p.commentRepo.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}

	comment.CommentContent = content
	return comment, nil
}

func (p *postService) DeleteComment(ctx context.Context, commentID, userID int) error {
	comment, err := p.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return apperrors.OperationForbidden("You are not allowed to delete this comment.")
	}

	return p.commentRepo.Delete(ctx, commentID)
}

func (p *postService) LikePost(ctx context.Context, postID, userID int) (*models.PostView, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := p.reactions.Like(ctx, postID, userID); err != nil {
		return nil, err
	}

	return p.GetPost(ctx, postID)
}

func (p *postService) RemoveLike(ctx context.Context, postID, userID int) (*models.PostView, error) {
	if err := p.reactions.RemoveLike(ctx, postID, userID); err != nil {
		return nil, err
	}

	return p.GetPost(ctx, postID)
}

func (p *postService) DislikePost(ctx context.Context, postID, userID int) (*models.PostView, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := p.reactions.Dislike(ctx, postID, userID); err != nil {
		return nil, err
	}

	return p.GetPost(ctx, postID)
}

func (p *postService) RemoveDislike(ctx context.Context, postID, userID int) (*models.PostView, error) {
	if err := p.reactions.RemoveDislike(ctx, postID, userID); err != nil {
		return nil, err
	}

	return p.GetPost(ctx, postID)
}

func (p *postService) username(ctx context.Context, userID int) string {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Username
}

// assemblePostView - денормализованное представление поста: счётчики,
// хештеги и имена пользователей, разрешённые по одному на запись
func (p *postService) assemblePostView(ctx context.Context, post *models.Post) (*models.PostView, error) {
	hashtagModels, err := p.hashtagRepo.GetForPost(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	hashtags := make([]string, 0, len(hashtagModels))
	for _, hashtagModel := range hashtagModels {
		hashtags = append(hashtags, hashtagModel.Hashtag)
	}

	comments, err := p.commentRepo.GetByPostID(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	commentViews := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		commentViews = append(commentViews, models.CommentView{
			Username:    p.username(ctx, comment.UserID),
			Comment:     comment.CommentContent,
			CommentDate: comment.CommentedAt,
		})
	}

	likerIDs, err := p.reactions.GetLikerIDs(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	dislikerIDs, err := p.reactions.GetDislikerIDs(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	likedBy := make([]string, 0, len(likerIDs))
	for _, likerID := range likerIDs {
		likedBy = append(likedBy, p.username(ctx, likerID))
	}

	dislikedBy := make([]string, 0, len(dislikerIDs))
	for _, dislikerID := range dislikerIDs {
		dislikedBy = append(dislikedBy, p.username(ctx, dislikerID))
	}

	return &models.PostView{
		PostID:        post.PostID,
		UserID:        post.UserID,
		PostTitle:     post.PostTitle,
		PostContent:   post.PostContent,
		PostImage:     post.PostImage,
		PostedAt:      post.PostedAt,
		TotalLikes:    len(likedBy),
		TotalDislikes: len(dislikedBy),
		TotalComments: len(commentViews),
		Hashtags:      hashtags,
		Comments:      commentViews,
		LikedBy:       likedBy,
		DislikedBy:    dislikedBy,
	}, nil
}

func (p *postService) assemblePostViews(ctx context.Context, posts []models.Post) ([]models.PostView, error) {
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		view, err := p.assemblePostView(ctx, &posts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}
