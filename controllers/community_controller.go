package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/realme-social/realme-backend/models"
	"github.com/realme-social/realme-backend/utils"
)

// CommunityController serves community creation and reads. Communities have
// no soft-delete or ownership-gated mutation in the current API.
type CommunityController struct {
	db *gorm.DB
}

// NewCommunityController creates a new CommunityController instance.
func NewCommunityController(db *gorm.DB) *CommunityController {
	return &CommunityController{db: db}
}

// ListCommunities returns all communities.
func (c *CommunityController) ListCommunities(ctx *gin.Context) {
	communities := make([]models.Community, 0)
	if err := c.db.WithContext(ctx.Request.Context()).Find(&communities).Error; err != nil {
		utils.Sugar.Errorw("failed to list communities", "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to retrieve communities")
		return
	}
	ctx.JSON(http.StatusOK, communities)
}

// GetCommunity returns a single community by id.
func (c *CommunityController) GetCommunity(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "Community not found")
		return
	}

	var community models.Community
	if err := c.db.WithContext(ctx.Request.Context()).First(&community, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "Community not found")
			return
		}
		utils.Sugar.Errorw("failed to load community", "community_id", id, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to retrieve community")
		return
	}
	ctx.JSON(http.StatusOK, community)
}

// CreateCommunity creates a community owned by the supplied owner id. No
// auth is required on this route today.
func (c *CommunityController) CreateCommunity(ctx *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required,min=1"`
		Description   string  `json:"description"`
		Authoritarian *bool   `json:"authoritarian"`
		OwnerID       string  `json:"owner_id" binding:"required,uuid"`
		ThemeID       *string `json:"theme_id" binding:"omitempty,uuid"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(ctx, "Invalid community data", bindingIssues(err))
		return
	}

	community := models.Community{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     uuid.MustParse(req.OwnerID),
	}
	if req.Authoritarian != nil {
		community.Authoritarian = *req.Authoritarian
	}
	if req.ThemeID != nil {
		themeID := uuid.MustParse(*req.ThemeID)
		community.ThemeID = &themeID
	}

	if err := c.db.WithContext(ctx.Request.Context()).Create(&community).Error; err != nil {
		utils.Sugar.Errorw("failed to create community", "owner_id", community.OwnerID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to create community")
		return
	}

	ctx.JSON(http.StatusCreated, community)
}
