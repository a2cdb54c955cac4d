package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thedcode/backend/internal/models"
)

// PublicTestimonials godoc
// @Summary List published testimonials
// @Tags Public
// @Produce json
// @Success 200 {object} map[string]interface{} "Testimonials"
// @Router /testimonials [get]
func (s *Server) PublicTestimonials(c echo.Context) error {
	var testimonials []models.Testimonial
	if err := s.DB.Where("is_published = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&testimonials).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch testimonials"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": testimonials})
}

type testimonialRequest struct {
	ClientName     string  `json:"client_name" example:"Rahul Mehta" binding:"required"`
	ClientPhotoURL *string `json:"client_photo_url"`
	Rating         *int    `json:"rating" example:"5" binding:"required"`
	ReviewText     string  `json:"review_text" example:"The team transformed our home." binding:"required"`
	ProjectType    *string `json:"project_type" example:"Residential"`
	Location       *string `json:"location" example:"Bengaluru"`
	IsPublished    *bool   `json:"is_published"`
	DisplayOrder   *int    `json:"display_order"`
}

// AdminListTestimonials godoc
// @Summary List all testimonials
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Testimonials"
// @Router /admin/testimonials [get]
func (s *Server) AdminListTestimonials(c echo.Context) error {
	user := c.Get("user").(*models.User)
	s.logAdminActivity(user.ID, "view", "testimonials", nil, "", c)

	var testimonials []models.Testimonial
	if err := s.DB.Order("display_order ASC, created_at DESC").Find(&testimonials).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch testimonials"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": testimonials})
}

// AdminCreateTestimonial godoc
// @Summary Create a testimonial
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body testimonialRequest true "Testimonial data"
// @Success 200 {object} map[string]interface{} "Created testimonial"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /admin/testimonials [post]
func (s *Server) AdminCreateTestimonial(c echo.Context) error {
	user := c.Get("user").(*models.User)

	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ReviewText = strings.TrimSpace(req.ReviewText)
	if req.ClientName == "" || req.ReviewText == "" || req.Rating == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Client name, rating, and review text are required."})
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Rating must be between 1 and 5."})
	}

	testimonial := models.Testimonial{
		ClientName:     req.ClientName,
		ClientPhotoURL: req.ClientPhotoURL,
		Rating:         *req.Rating,
		ReviewText:     req.ReviewText,
		ProjectType:    req.ProjectType,
		Location:       req.Location,
	}
	if req.IsPublished != nil {
		testimonial.IsPublished = *req.IsPublished
	}
	if req.DisplayOrder != nil {
		testimonial.DisplayOrder = *req.DisplayOrder
	}

	if err := s.DB.Create(&testimonial).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to save testimonial"})
	}

	testimonialID := testimonial.ID
	s.logAdminActivity(user.ID, "create", "testimonial", &testimonialID, "", c)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": testimonial})
}

// AdminUpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Param request body testimonialRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated testimonial"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/testimonials/{id} [put]
func (s *Server) AdminUpdateTestimonial(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid testimonial ID"})
	}

	var testimonial models.Testimonial
	if err := s.DB.First(&testimonial, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Testimonial not found"})
	}

	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}

	if name := strings.TrimSpace(req.ClientName); name != "" {
		testimonial.ClientName = name
	}
	if text := strings.TrimSpace(req.ReviewText); text != "" {
		testimonial.ReviewText = text
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Rating must be between 1 and 5."})
		}
		testimonial.Rating = *req.Rating
	}
	if req.ClientPhotoURL != nil {
		testimonial.ClientPhotoURL = req.ClientPhotoURL
	}
	if req.ProjectType != nil {
		testimonial.ProjectType = req.ProjectType
	}
	if req.Location != nil {
		testimonial.Location = req.Location
	}
	if req.IsPublished != nil {
		testimonial.IsPublished = *req.IsPublished
	}
	if req.DisplayOrder != nil {
		testimonial.DisplayOrder = *req.DisplayOrder
	}

	if err := s.DB.Save(&testimonial).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to update testimonial"})
	}

	testimonialID := testimonial.ID
	s.logAdminActivity(user.ID, "update", "testimonial", &testimonialID, "", c)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": testimonial})
}

// AdminDeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} simpleResponse
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/testimonials/{id} [delete]
func (s *Server) AdminDeleteTestimonial(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid testimonial ID"})
	}

	var testimonial models.Testimonial
	if err := s.DB.First(&testimonial, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Testimonial not found"})
	}
	if err := s.DB.Delete(&testimonial).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to delete testimonial"})
	}

	testimonialID := testimonial.ID
	s.logAdminActivity(user.ID, "delete", "testimonial", &testimonialID, "", c)

	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Testimonial deleted."})
}
