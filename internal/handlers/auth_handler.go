package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/auth"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager

	// Compared against on login when the email is unknown, so a miss
	// costs the same as a wrong password.
	dummyDigest string
}

func NewAuthHandler(db *gorm.DB, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthHandler {
	dummy, _ := hasher.Hash("no-such-user")
	return &AuthHandler{
		db:          db,
		hasher:      hasher,
		tokens:      tokens,
		dummyDigest: dummy,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailValid(email) {
		httperr.Unprocessable(c, "invalid_email", "Email address is malformed.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Role:         models.RoleStaff,
		IsActive:     true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not persist user.")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(201, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	err := h.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.hasher.Verify(req.Password, h.dummyDigest)
			httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
		return
	}

	if !user.IsActive {
		httperr.Unauthorized(c, "user_inactive", "Account is deactivated.")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(200, gin.H{
		"user":  user,
		"token": token,
	})
}
