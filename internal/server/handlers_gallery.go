package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"

	"github.com/thedcode/backend/internal/models"
)

// PublicGallery godoc
// @Summary List published gallery images
// @Description Published images ordered for display on the public site
// @Tags Public
// @Produce json
// @Success 200 {object} map[string]interface{} "Gallery images"
// @Router /gallery [get]
func (s *Server) PublicGallery(c echo.Context) error {
	var images []models.GalleryImage
	query := s.DB.Where("is_published = ?", true)
	if c.QueryParam("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}
	if err := query.Order("display_order ASC, created_at DESC").Find(&images).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch gallery"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": images})
}

type galleryImageRequest struct {
	Title             string   `json:"title" example:"Warm minimal living room" binding:"required"`
	Description       *string  `json:"description"`
	ImageURL          string   `json:"image_url" example:"https://cdn.example.com/living-room.jpg" binding:"required"`
	ThumbnailURL      *string  `json:"thumbnail_url"`
	AltText           *string  `json:"alt_text"`
	Tags              []string `json:"tags"`
	SocialMediaSource *string  `json:"social_media_source"`
	SocialMediaURL    *string  `json:"social_media_url"`
	DisplayOrder      *int     `json:"display_order"`
	IsFeatured        *bool    `json:"is_featured"`
	IsPublished       *bool    `json:"is_published"`
}

// AdminListGalleryImages godoc
// @Summary List all gallery images
// @Description All images including unpublished, for the admin panel
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Gallery images"
// @Router /admin/gallery [get]
func (s *Server) AdminListGalleryImages(c echo.Context) error {
	user := c.Get("user").(*models.User)
	s.logAdminActivity(user.ID, "view", "gallery_images", nil, "", c)

	var images []models.GalleryImage
	if err := s.DB.Order("display_order ASC, created_at DESC").Find(&images).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch gallery"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": images})
}

// AdminCreateGalleryImage godoc
// @Summary Create a gallery image
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body galleryImageRequest true "Gallery image data"
// @Success 200 {object} map[string]interface{} "Created image"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /admin/gallery [post]
func (s *Server) AdminCreateGalleryImage(c echo.Context) error {
	user := c.Get("user").(*models.User)

	var req galleryImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.ImageURL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Title and image URL are required."})
	}

	image := models.GalleryImage{
		Title:             req.Title,
		Description:       req.Description,
		ImageURL:          strings.TrimSpace(req.ImageURL),
		ThumbnailURL:      req.ThumbnailURL,
		AltText:           req.AltText,
		Tags:              pq.StringArray(req.Tags),
		SocialMediaSource: req.SocialMediaSource,
		SocialMediaURL:    req.SocialMediaURL,
	}
	if req.DisplayOrder != nil {
		image.DisplayOrder = *req.DisplayOrder
	}
	if req.IsFeatured != nil {
		image.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		image.IsPublished = *req.IsPublished
	}

	if err := s.DB.Create(&image).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to save gallery image"})
	}

	imageID := image.ID
	s.logAdminActivity(user.ID, "create", "gallery_image", &imageID, "", c)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": image})
}

// AdminUpdateGalleryImage godoc
// @Summary Update a gallery image
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Param request body galleryImageRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated image"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/gallery/{id} [put]
func (s *Server) AdminUpdateGalleryImage(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid image ID"})
	}

	var image models.GalleryImage
	if err := s.DB.First(&image, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Gallery image not found"})
	}

	var req galleryImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		image.Title = title
	}
	if url := strings.TrimSpace(req.ImageURL); url != "" {
		image.ImageURL = url
	}
	if req.Description != nil {
		image.Description = req.Description
	}
	if req.ThumbnailURL != nil {
		image.ThumbnailURL = req.ThumbnailURL
	}
	if req.AltText != nil {
		image.AltText = req.AltText
	}
	if req.Tags != nil {
		image.Tags = pq.StringArray(req.Tags)
	}
	if req.SocialMediaSource != nil {
		image.SocialMediaSource = req.SocialMediaSource
	}
	if req.SocialMediaURL != nil {
		image.SocialMediaURL = req.SocialMediaURL
	}
	if req.DisplayOrder != nil {
		image.DisplayOrder = *req.DisplayOrder
	}
	if req.IsFeatured != nil {
		image.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		image.IsPublished = *req.IsPublished
	}

	if err := s.DB.Save(&image).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to update gallery image"})
	}

	imageID := image.ID
	s.logAdminActivity(user.ID, "update", "gallery_image", &imageID, "", c)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": image})
}

// AdminDeleteGalleryImage godoc
// @Summary Delete a gallery image
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} simpleResponse
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/gallery/{id} [delete]
func (s *Server) AdminDeleteGalleryImage(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid image ID"})
	}

	var image models.GalleryImage
	if err := s.DB.First(&image, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Gallery image not found"})
	}
	if err := s.DB.Delete(&image).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to delete gallery image"})
	}

	imageID := image.ID
	s.logAdminActivity(user.ID, "delete", "gallery_image", &imageID, "", c)

	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Gallery image deleted."})
}
