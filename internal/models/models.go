package models

import (
	"time"
)

type User struct {
	UserID          int        `json:"userId" db:"user_id"`
	Username        string     `json:"username" db:"username"`
	Email           string     `json:"email" db:"email"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	Firstname       string     `json:"firstname" db:"firstname"`
	Lastname        string     `json:"lastname" db:"lastname"`
	Dob             *time.Time `json:"dob" db:"dob"`
	IsAdmin         bool       `json:"isAdmin" db:"is_admin"`
	IsActive        bool       `json:"isActive" db:"is_active"`
	AcctDeactivated bool       `json:"acctDeactivated" db:"acct_deactivated"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	ImageURL        string     `json:"imageUrl" db:"image_url"`
}

type EmailToken struct {
	ID         int       `json:"id" db:"id"`
	Token      string    `json:"token" db:"token"`
	Email      string    `json:"email" db:"email"`
	OldEmail   *string   `json:"oldEmail" db:"old_email"`
	IsVerified bool      `json:"isVerified" db:"is_verified"`
	ExpiresAt  time.Time `json:"expiresAt" db:"expires_at"`
}

type Post struct {
	PostID      int       `json:"postId" db:"post_id"`
	UserID      int       `json:"userId" db:"user_id"`
	PostTitle   string    `json:"postTitle" db:"post_title"`
	PostContent string    `json:"postContent" db:"post_content"`
	PostImage   *string   `json:"postImage" db:"post_image"`
	PostedAt    time.Time `json:"postedAt" db:"posted_at"`
}

type Comment struct {
	CommentID      int       `json:"commentId" db:"comment_id"`
	UserID         int       `json:"userId" db:"user_id"`
	PostID         int       `json:"postId" db:"post_id"`
	CommentContent string    `json:"commentContent" db:"comment_content"`
	CommentedAt    time.Time `json:"commentedAt" db:"commented_at"`
}

type Hashtag struct {
	HashtagID int    `json:"hashtagId" db:"hashtag_id"`
	Hashtag   string `json:"hashtag" db:"hashtag"`
}

type ImageMapper struct {
	ImageID   string `json:"imageId" db:"image_id"`
	ImageName string `json:"imageName" db:"image_name"`
	ImageURL  string `json:"imageUrl" db:"image_url"`
}

// CommentView - комментарий с разрешённым именем пользователя
type CommentView struct {
	Username    string    `json:"username"`
	Comment     string    `json:"comment"`
	CommentDate time.Time `json:"commentDate"`
}

// PostView - денормализованное представление поста для выдачи
type PostView struct {
	PostID        int           `json:"postId"`
	UserID        int           `json:"userId"`
	PostTitle     string        `json:"postTitle"`
	PostContent   string        `json:"postContent"`
	PostImage     *string       `json:"postImage"`
	PostedAt      time.Time     `json:"postedAt"`
	TotalLikes    int           `json:"totalLikes"`
	TotalDislikes int           `json:"totalDislikes"`
	TotalComments int           `json:"totalComments"`
	Hashtags      []string      `json:"hashtags"`
	Comments      []CommentView `json:"comments"`
	LikedBy       []string      `json:"likedBy"`
	DislikedBy    []string      `json:"dislikedBy"`
}
