package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xchire/acculog/internal/models"
	"github.com/xchire/acculog/internal/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func (a *AdminController) ListUsers(c *gin.Context) {
	limit := 20
	page := 1
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	sortBy := strings.ToLower(c.DefaultQuery("sort_by", "created_at"))
	sortDir := strings.ToUpper(c.DefaultQuery("sort_dir", "DESC"))
	if sortDir != "ASC" && sortDir != "DESC" {
		sortDir = "DESC"
	}
	allowedSorts := map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"email":      "email",
		"firstname":  "firstname",
		"lastname":   "lastname",
		"role":       "role",
	}
	sortCol, ok := allowedSorts[sortBy]
	if !ok {
		sortCol = "created_at"
	}
	order := fmt.Sprintf("%s %s", sortCol, sortDir)

	base := a.DB.Model(&models.User{})
	if qText := strings.TrimSpace(c.Query("q")); qText != "" {
		like := "%" + qText + "%"
		base = base.Where("firstname ILIKE ? OR lastname ILIKE ? OR email ILIKE ? OR reference_id ILIKE ?", like, like, like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		base = base.Where("role = ?", role)
	}
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		base = base.Where("department = ?", dept)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var users []models.User
	if err := base.Order(order).Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": out,
		"meta": gin.H{"total": total, "limit": limit, "page": page, "sort_by": sortCol, "sort_dir": sortDir},
	})
}

func (a *AdminController) GetUser(c *gin.Context) {
	referenceID := strings.TrimSpace(c.Param("reference_id"))
	var user models.User
	if err := a.DB.Where("reference_id = ?", referenceID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, userJSON(user))
}

type updateUserRequest struct {
	Firstname  *string `json:"firstname"`
	Lastname   *string `json:"lastname"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Company    *string `json:"company"`
	TSM        *string `json:"tsm"`
	Active     *bool   `json:"active"`
}

func (a *AdminController) UpdateUser(c *gin.Context) {
	referenceID := strings.TrimSpace(c.Param("reference_id"))
	var user models.User
	if err := a.DB.Where("reference_id = ?", referenceID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != nil {
		if !IsValidRole(*req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}
		user.Role = *req.Role
	}
	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.TSM != nil {
		user.TSM = *req.TSM
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		user.Password = hashed
	}

	if err := a.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated", "user": userJSON(user)})
}

func (a *AdminController) DeleteUser(c *gin.Context) {
	referenceID := strings.TrimSpace(c.Param("reference_id"))
	res := a.DB.Where("reference_id = ?", referenceID).Delete(&models.User{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func userJSON(u models.User) gin.H {
	return gin.H{
		"reference_id": u.ReferenceID,
		"firstname":    u.Firstname,
		"lastname":     u.Lastname,
		"email":        u.Email,
		"role":         u.Role,
		"department":   u.Department,
		"company":      u.Company,
		"tsm":          u.TSM,
		"active":       u.Active,
		"created_at":   u.CreatedAt,
		"updated_at":   u.UpdatedAt,
	}
}
