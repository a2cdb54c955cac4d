package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thedcode/backend/internal/models"
	"github.com/thedcode/backend/internal/utils"
)

// AdminDashboard godoc
// @Summary Get admin dashboard statistics
// @Description Content and lead counts for the admin dashboard
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AdminDashboardStats "Dashboard statistics"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /admin/dashboard [get]
func (s *Server) AdminDashboard(c echo.Context) error {
	user := c.Get("user").(*models.User)
	s.logAdminActivity(user.ID, "view", "dashboard", nil, "", c)

	var stats models.AdminDashboardStats

	var totalLeads int64
	s.DB.Model(&models.Lead{}).Count(&totalLeads)
	stats.TotalLeads = int(totalLeads)

	today := utils.NowUTC().Truncate(24 * time.Hour)
	var newLeadsToday int64
	s.DB.Model(&models.Lead{}).Where("created_at >= ?", today).Count(&newLeadsToday)
	stats.NewLeadsToday = int(newLeadsToday)

	var openLeads int64
	s.DB.Model(&models.Lead{}).Where("status IN ?", []string{"new", "contacted", "qualified"}).Count(&openLeads)
	stats.OpenLeads = int(openLeads)

	var totalImages, publishedImages int64
	s.DB.Model(&models.GalleryImage{}).Count(&totalImages)
	s.DB.Model(&models.GalleryImage{}).Where("is_published = ?", true).Count(&publishedImages)
	stats.TotalGalleryImages = int(totalImages)
	stats.PublishedGalleryImages = int(publishedImages)

	var totalTestimonials, publishedTestimonials int64
	s.DB.Model(&models.Testimonial{}).Count(&totalTestimonials)
	s.DB.Model(&models.Testimonial{}).Where("is_published = ?", true).Count(&publishedTestimonials)
	stats.TotalTestimonials = int(totalTestimonials)
	stats.PublishedTestimonials = int(publishedTestimonials)

	var totalPosts, publishedPosts int64
	s.DB.Model(&models.BlogPost{}).Count(&totalPosts)
	s.DB.Model(&models.BlogPost{}).Where("is_published = ?", true).Count(&publishedPosts)
	stats.TotalBlogPosts = int(totalPosts)
	stats.PublishedBlogPosts = int(publishedPosts)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    stats,
	})
}

// AdminActivities godoc
// @Summary List recent admin activity
// @Description Audit trail of admin actions. Requires the super_admin role.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{} "Activity entries"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /admin/activities [get]
func (s *Server) AdminActivities(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	var total int64
	s.DB.Model(&models.AdminActivity{}).Count(&total)

	var activities []models.AdminActivity
	if err := s.DB.Offset(offset).Limit(limit).Order("created_at DESC").Find(&activities).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch activities"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    activities,
		"pagination": map[string]any{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
