package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/realme-social/realme-backend/models"
	"github.com/realme-social/realme-backend/utils"
)

const (
	defaultPostLimit = 10
	maxPostLimit     = 50
)

// PostController manages post creation, reads and author-gated soft delete.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// ListPosts returns active posts newest-first, windowed by limit/offset and
// optionally filtered by content type.
func (p *PostController) ListPosts(ctx *gin.Context) {
	limit, offset := parseListWindow(ctx.Query("limit"), ctx.Query("offset"))

	query := p.db.WithContext(ctx.Request.Context()).
		Scopes(models.Visible).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)
	if contentType := ctx.Query("type"); contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}

	posts := make([]models.Post, 0)
	if err := query.Find(&posts).Error; err != nil {
		utils.Sugar.Errorw("failed to list posts", "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to retrieve posts")
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetPost returns a single active post by id. Soft-deleted posts are
// not-found for all purposes.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "Post not found")
		return
	}

	post, err := p.loadPost(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.Sugar.Errorw("failed to load post", "post_id", id, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to retrieve post")
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// ListCommunityPosts returns a community's active posts newest-first.
func (p *PostController) ListCommunityPosts(ctx *gin.Context) {
	posts := make([]models.Post, 0)

	communityID, err := uuid.Parse(ctx.Param("communityId"))
	if err != nil {
		// No community can have this id, so there is nothing to list.
		ctx.JSON(http.StatusOK, posts)
		return
	}

	err = p.db.WithContext(ctx.Request.Context()).
		Scopes(models.Visible).
		Where("community_id = ?", communityID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		utils.Sugar.Errorw("failed to list community posts", "community_id", communityID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to retrieve posts")
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// CreatePost creates a post authored by the authenticated caller. Any
// author id supplied by the client is ignored: the token subject wins.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		CommunityID string          `json:"community_id" binding:"required,uuid"`
		Content     string          `json:"content" binding:"required,min=1"`
		ContentType string          `json:"content_type" binding:"required,oneof=text image video link"`
		Metadata    json.RawMessage `json:"metadata"`
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

	post := models.Post{
		AuthorID:    authorID,
		CommunityID: uuid.MustParse(req.CommunityID),
		Content:     utils.Sanitize(req.Content),
		ContentType: req.ContentType,
	}
	if len(req.Metadata) > 0 {
		post.Metadata = datatypes.JSON(req.Metadata)
	}

	if err := p.db.WithContext(ctx.Request.Context()).Create(&post).Error; err != nil {
		utils.Sugar.Errorw("failed to create post", "author_id", authorID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to create post")
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// DeletePost soft-deletes a post. Only the original author may remove it,
// and a missing or already-removed post is 404 before any ownership check.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "Post not found")
		return
	}

	post, err := p.loadPost(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.Sugar.Errorw("failed to load post", "post_id", id, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if post.AuthorID != userID {
		utils.Error(ctx, http.StatusForbidden, "You are not allowed to delete this post")
		return
	}

	updates := map[string]interface{}{
		"is_removed": true,
		"updated_at": time.Now(),
	}
	if err := p.db.WithContext(ctx.Request.Context()).Model(&models.Post{}).Where("id = ?", post.ID).Updates(updates).Error; err != nil {
		utils.Sugar.Errorw("failed to soft delete post", "post_id", post.ID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (p *PostController) loadPost(ctx *gin.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := p.db.WithContext(ctx.Request.Context()).
		Scopes(models.Visible).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// parseListWindow clamps client supplied pagination: limit defaults to 10
// and never exceeds 50, offset defaults to 0.
func parseListWindow(limitStr, offsetStr string) (int, int) {
	limit := defaultPostLimit
	offset := 0
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		limit = n
	}
	if limit > maxPostLimit {
		limit = maxPostLimit
	}
	if n, err := strconv.Atoi(offsetStr); err == nil && n > 0 {
		offset = n
	}
	return limit, offset
}
