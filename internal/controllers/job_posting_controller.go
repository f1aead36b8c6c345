package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xchire/acculog/internal/models"
)

type JobPostingController struct {
	DB *gorm.DB
}

type createJobPostingRequest struct {
	Title          string   `json:"title" binding:"required"`
	Category       string   `json:"category"`
	JobType        string   `json:"job_type"`
	Location       string   `json:"location"`
	Qualifications []string `json:"qualifications"`
	Status         string   `json:"status"`
}

type updateJobPostingRequest struct {
	Title          *string   `json:"title"`
	Category       *string   `json:"category"`
	JobType        *string   `json:"job_type"`
	Location       *string   `json:"location"`
	Qualifications *[]string `json:"qualifications"`
	Status         *string   `json:"status"`
}

func validPostingStatus(s string) bool {
	return s == "Open" || s == "Closed"
}

func (jc *JobPostingController) ListJobPostings(c *gin.Context) {
	q := jc.DB.Model(&models.JobPosting{}).Order("created_at DESC")
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !validPostingStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
			return
		}
		q = q.Where("status = ?", status)
	}

	var postings []models.JobPosting
	if err := q.Find(&postings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(postings))
	for _, p := range postings {
		out = append(out, jobPostingJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (jc *JobPostingController) CreateJobPosting(c *gin.Context) {
	var req createJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "Open"
	}
	if !validPostingStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
		return
	}

	// drop blank qualification lines
	quals := make([]string, 0, len(req.Qualifications))
	for _, q := range req.Qualifications {
		if s := strings.TrimSpace(q); s != "" {
			quals = append(quals, s)
		}
	}

	posting := models.JobPosting{
		Title:          req.Title,
		Category:       req.Category,
		JobType:        req.JobType,
		Location:       req.Location,
		Qualifications: quals,
		Status:         status,
	}
	if err := jc.DB.Create(&posting).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "job": jobPostingJSON(posting)})
}

func (jc *JobPostingController) GetJobPosting(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var posting models.JobPosting
	if err := jc.DB.Where("id = ?", id).First(&posting).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job posting not found"})
		return
	}
	c.JSON(http.StatusOK, jobPostingJSON(posting))
}

func (jc *JobPostingController) UpdateJobPosting(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var posting models.JobPosting
	if err := jc.DB.Where("id = ?", id).First(&posting).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job posting not found"})
		return
	}

	var req updateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil {
		if !validPostingStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
			return
		}
		posting.Status = *req.Status
	}
	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Category != nil {
		posting.Category = *req.Category
	}
	if req.JobType != nil {
		posting.JobType = *req.JobType
	}
	if req.Location != nil {
		posting.Location = *req.Location
	}
	if req.Qualifications != nil {
		posting.Qualifications = *req.Qualifications
	}

	if err := jc.DB.Save(&posting).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated", "job": jobPostingJSON(posting)})
}

func (jc *JobPostingController) DeleteJobPosting(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	res := jc.DB.Where("id = ?", id).Delete(&models.JobPosting{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "job posting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func jobPostingJSON(p models.JobPosting) gin.H {
	return gin.H{
		"id":             p.ID,
		"title":          p.Title,
		"category":       p.Category,
		"job_type":       p.JobType,
		"location":       p.Location,
		"qualifications": p.Qualifications,
		"status":         p.Status,
		"created_at":     p.CreatedAt,
		"updated_at":     p.UpdatedAt,
	}
}
