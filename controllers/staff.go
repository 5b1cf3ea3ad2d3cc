package controllers

import (
	"errors"
	"net/http"

	"scoopshop-backend/config"
	"scoopshop-backend/models"
	"scoopshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddStaffInput defines the expected JSON structure for creating a staff account
type AddStaffInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// GetStaff lists all accounts. Owner only.
func GetStaff(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"name":      u.DisplayName(),
			"role":      u.Role,
			"isActive":  u.IsActive,
			"lastLogin": u.LastLogin,
		})
	}

	c.JSON(http.StatusOK, out)
}

// AddStaff creates a staff account. Owner only; new accounts always get the
// staff role.
func AddStaff(c *gin.Context) {
	var input AddStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ?", input.Email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Name:     input.Name,
		Role:     models.RoleStaff,
		IsActive: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.DisplayName(),
		"role":  user.Role,
	})
}

// DeleteStaff removes a staff account. Owner only; owner accounts cannot be
// removed through this endpoint.
func DeleteStaff(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if user.Role == models.RoleOwner {
		utils.RespondWithError(c, http.StatusForbidden, "Owner accounts cannot be deleted")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff account deleted successfully"})
}
