package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/realme-social/realme-backend/models"
	"github.com/realme-social/realme-backend/utils"
)

// UserController serves profile creation and reads. Profiles have no update
// or delete routes.
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a new UserController instance.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// ListUsers returns all profiles.
func (u *UserController) ListUsers(ctx *gin.Context) {
	users := make([]models.User, 0)
	if err := u.db.WithContext(ctx.Request.Context()).Find(&users).Error; err != nil {
		utils.Sugar.Errorw("failed to list users", "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser returns a single profile by id.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "User not found")
		return
	}

	var user models.User
	if err := u.db.WithContext(ctx.Request.Context()).First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.Sugar.Errorw("failed to load user", "user_id", id, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// CreateUser creates a profile. No auth is required on this route today; the
// row id is generated server-side.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		RealName  string            `json:"real_name" binding:"required,min=1"`
		BirthDate string            `json:"birth_date" binding:"required,datetime=2006-01-02"`
		Region    string            `json:"region" binding:"required"`
		Verified  *bool             `json:"verified" binding:"required"`
		SSOLinks  map[string]string `json:"sso_links"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(ctx, "Invalid user data", bindingIssues(err))
		return
	}

	user := models.User{
		RealName:  req.RealName,
		BirthDate: req.BirthDate,
		Region:    req.Region,
		Verified:  *req.Verified,
	}
	if len(req.SSOLinks) > 0 {
		links := make(datatypes.JSONMap, len(req.SSOLinks))
		for k, v := range req.SSOLinks {
			links[k] = v
		}
		user.SSOLinks = links
	}

	if err := u.db.WithContext(ctx.Request.Context()).Create(&user).Error; err != nil {
		utils.Sugar.Errorw("failed to create user", "err", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to create user")
		return
	}

	ctx.JSON(http.StatusCreated, user)
}
