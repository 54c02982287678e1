package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/realme-social/realme-backend/models"
	"github.com/realme-social/realme-backend/utils"
)

// CommentController manages comment creation, reads and author-gated soft
// delete. Lifecycle mirrors posts; listings are oldest-first.
type CommentController struct {
	db *gorm.DB
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

// ListPostComments returns a post's active comments oldest-first, the
// inverse of the post ordering so threads read top to bottom.
func (c *CommentController) ListPostComments(ctx *gin.Context) {
	comments := make([]models.Comment, 0)

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusOK, comments)
		return
	}

	err = c.db.WithContext(ctx.Request.Context()).
		Scopes(models.Visible).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		utils.Sugar.Errorw("failed to list comments", "post_id", postID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// CreateComment creates a comment authored by the authenticated caller. The
// client may name a parent comment to thread a reply.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req struct {
		PostID     string  `json:"post_id" binding:"required,uuid"`
		Content    string  `json:"content" binding:"required,min=1"`
		ParentComm *string `json:"parent_comm" binding:"omitempty,uuid"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(ctx, "Validation failed", bindingIssues(err))
		return
	}

	authorID, ok := currentUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	comment := models.Comment{
		AuthorID: authorID,
		PostID:   uuid.MustParse(req.PostID),
		Content:  utils.Sanitize(req.Content),
	}
	if req.ParentComm != nil {
		parentID := uuid.MustParse(*req.ParentComm)
		comment.ParentCommentID = &parentID
	}

	if err := c.db.WithContext(ctx.Request.Context()).Create(&comment).Error; err != nil {
		utils.Sugar.Errorw("failed to create comment", "author_id", authorID, "post_id", comment.PostID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// DeleteComment soft-deletes a comment. Only the original author may remove
// it; missing or already-removed comments are 404 before the ownership check.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "Comment not found")
		return
	}

	var comment models.Comment
	err = c.db.WithContext(ctx.Request.Context()).
		Scopes(models.Visible).
		First(&comment, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "Comment not found")
			return
		}
		utils.Sugar.Errorw("failed to load comment", "comment_id", id, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if comment.AuthorID != userID {
		utils.Error(ctx, http.StatusForbidden, "You are not allowed to delete this comment")
		return
	}

	err = c.db.WithContext(ctx.Request.Context()).
		Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Update("is_removed", true).Error
	if err != nil {
		utils.Sugar.Errorw("failed to soft delete comment", "comment_id", comment.ID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	ctx.Status(http.StatusNoContent)
}
