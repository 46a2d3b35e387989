package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"myblog/internal/apperrors"
	"myblog/internal/models"
	"myblog/internal/service"
)

type CommentRequest struct {
	CommentContent string `json:"comment_content" validate:"required"`
}

// CreatePost принимает multipart-форму: post_title, post_content и файл post_image
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid multipart form."))
		return
	}

	title := r.PostFormValue("post_title")
	content := r.PostFormValue("post_content")
	if title == "" || content == "" {
		WriteError(w, apperrors.DataCreation("post_title and post_content are required."))
		return
	}

	var imageURL *string
	file, header, err := r.FormFile("post_image")
	if err == nil {
		defer file.Close()
		url, err := h.ImageService.Upload(
			r.Context(), h.Cfg.MinIO.PostImageFolder, header.Filename, file, header.Size)
		if err != nil {
			WriteError(w, err)
			return
		}
		imageURL = &url
	} else if err != http.ErrMissingFile {
		WriteError(w, apperrors.DataCreation("Invalid post image."))
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, title, content, imageURL)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetAllPosts(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	posts, err := h.PostService.GetUserPosts(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

// UpdatePost - multipart-форма, отсутствующие поля не трогаются
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid multipart form."))
		return
	}

	var req service.PostUpdateRequest
	if v := r.PostFormValue("post_title"); v != "" {
		req.PostTitle = &v
	}
	if v := r.PostFormValue("post_content"); v != "" {
		req.PostContent = &v
	}

	file, header, err := r.FormFile("post_image")
	if err == nil {
		defer file.Close()
		url, err := h.ImageService.Upload(
			r.Context(), h.Cfg.MinIO.PostImageFolder, header.Filename, file, header.Size)
		if err != nil {
			WriteError(w, err)
			return
		}
		req.PostImage = &url
	} else if err != http.ErrMissingFile {
		WriteError(w, apperrors.DataCreation("Invalid post image."))
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), postID, userID, req)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{
		Message: "Post " + strconv.Itoa(postID) + " deleted successfully",
	}, http.StatusOK)
}

func (h *Handlers) GetPostsByHashtag(w http.ResponseWriter, r *http.Request) {
	hashtag := mux.Vars(r)["hashtag"]

	posts, err := h.PostService.GetPostsByHashtag(r.Context(), hashtag)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid request body."))
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, apperrors.DataCreation("comment_content is required."))
		return
	}

	post, err := h.PostService.AddComment(r.Context(), postID, userID, req.CommentContent)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	commentID, err := pathID(r, "comment_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperrors.DataCreation("Invalid request body."))
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, apperrors.DataCreation("comment_content is required."))
		return
	}

	comment, err := h.PostService.EditComment(r.Context(), commentID, userID, req.CommentContent)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	commentID, err := pathID(r, "comment_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.PostService.DeleteComment(r.Context(), commentID, userID); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{
		Message: "Comment " + strconv.Itoa(commentID) + " deleted successfully",
	}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.PostService.LikePost, http.StatusCreated)
}

func (h *Handlers) RemoveLike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.PostService.RemoveLike, http.StatusOK)
}

func (h *Handlers) DislikePost(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.PostService.DislikePost, http.StatusCreated)
}

func (h *Handlers) RemoveDislike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.PostService.RemoveDislike, http.StatusOK)
}

// react - общий каркас для лайков и дизлайков
func (h *Handlers) react(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, postID, userID int) (*models.PostView, error),
	status int,
) {
	userID, err := currentUserID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	post, err := op(r.Context(), postID, userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, post, status)
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, apperrors.DataCreation("Invalid " + name + ".")
	}
	return id, nil
}
