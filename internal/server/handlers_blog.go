package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/thedcode/backend/internal/models"
	"github.com/thedcode/backend/internal/utils"
)

// PublicBlogPosts godoc
// @Summary List published blog posts
// @Description Published posts, newest first
// @Tags Public
// @Produce json
// @Success 200 {object} map[string]interface{} "Blog posts"
// @Router /blog [get]
func (s *Server) PublicBlogPosts(c echo.Context) error {
	var posts []models.BlogPost
	if err := s.DB.Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch posts"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": posts})
}

// PublicBlogPostBySlug godoc
// @Summary Get a published blog post by slug
// @Tags Public
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} map[string]interface{} "Blog post"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /blog/{slug} [get]
func (s *Server) PublicBlogPostBySlug(c echo.Context) error {
	slug := c.Param("slug")

	var post models.BlogPost
	if err := s.DB.Where("slug = ? AND is_published = ?", slug, true).First(&post).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Post not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": post})
}

type blogPostRequest struct {
	Title            string   `json:"title" example:"Five Lighting Ideas for Small Flats" binding:"required"`
	Slug             string   `json:"slug" example:"five-lighting-ideas-for-small-flats"`
	Excerpt          *string  `json:"excerpt"`
	Content          string   `json:"content" binding:"required"`
	FeaturedImageURL *string  `json:"featured_image_url"`
	Author           string   `json:"author" example:"The DCode"`
	Tags             []string `json:"tags"`
	MetaTitle        *string  `json:"meta_title"`
	MetaDescription  *string  `json:"meta_description"`
	IsPublished      *bool    `json:"is_published"`
}

// AdminListBlogPosts godoc
// @Summary List all blog posts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Blog posts"
// @Router /admin/blog [get]
func (s *Server) AdminListBlogPosts(c echo.Context) error {
	user := c.Get("user").(*models.User)
	s.logAdminActivity(user.ID, "view", "blog_posts", nil, "", c)

	var posts []models.BlogPost
	if err := s.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch posts"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": posts})
}

// AdminCreateBlogPost godoc
// @Summary Create a blog post
// @Description Create a post. The slug is derived from the title when omitted and must be unique.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body blogPostRequest true "Blog post data"
// @Success 200 {object} map[string]interface{} "Created post"
// @Failure 400 {object} map[string]interface{} "Bad request or duplicate slug"
// @Router /admin/blog [post]
func (s *Server) AdminCreateBlogPost(c echo.Context) error {
	user := c.Get("user").(*models.User)

	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Title and content are required."})
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "A valid slug could not be derived from the title."})
	}

	var existing models.BlogPost
	if err := s.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "A post with this slug already exists."})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to check slug"})
	}

	post := models.BlogPost{
		Title:            req.Title,
		Slug:             slug,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		Tags:             pq.StringArray(req.Tags),
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
	}
	if req.Author != "" {
		post.Author = req.Author
	} else {
		post.Author = s.Cfg.CompanyName
	}
	if req.IsPublished != nil && *req.IsPublished {
		post.IsPublished = true
		now := utils.NowUTC()
		post.PublishedAt = &now
	}

	if err := s.DB.Create(&post).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to save post"})
	}

	postID := post.ID
	s.logAdminActivity(user.ID, "create", "blog_post", &postID, "", c)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": post})
}

// AdminUpdateBlogPost godoc
// @Summary Update a blog post
// @Description Update a post. published_at is stamped the first time a post becomes published.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body blogPostRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated post"
// @Failure 400 {object} map[string]interface{} "Bad request or duplicate slug"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/blog/{id} [put]
func (s *Server) AdminUpdateBlogPost(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid post ID"})
	}

	var post models.BlogPost
	if err := s.DB.First(&post, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Post not found"})
	}

	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		post.Title = title
	}
	if content := strings.TrimSpace(req.Content); content != "" {
		post.Content = content
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" && slug != post.Slug {
		var existing models.BlogPost
		if err := s.DB.Where("slug = ? AND id <> ?", slug, post.ID).First(&existing).Error; err == nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "A post with this slug already exists."})
		}
		post.Slug = slug
	}
	if req.Excerpt != nil {
		post.Excerpt = req.Excerpt
	}
	if req.FeaturedImageURL != nil {
		post.FeaturedImageURL = req.FeaturedImageURL
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.Tags != nil {
		post.Tags = pq.StringArray(req.Tags)
	}
	if req.MetaTitle != nil {
		post.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		post.MetaDescription = req.MetaDescription
	}
	if req.IsPublished != nil {
		// Stamp published_at on the first unpublished -> published edge.
		if *req.IsPublished && !post.IsPublished && post.PublishedAt == nil {
			now := utils.NowUTC()
			post.PublishedAt = &now
		}
		post.IsPublished = *req.IsPublished
	}

	if err := s.DB.Save(&post).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to update post"})
	}

	postID := post.ID
	s.logAdminActivity(user.ID, "update", "blog_post", &postID, "", c)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": post})
}

// AdminDeleteBlogPost godoc
// @Summary Delete a blog post
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} simpleResponse
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/blog/{id} [delete]
func (s *Server) AdminDeleteBlogPost(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid post ID"})
	}

	var post models.BlogPost
	if err := s.DB.First(&post, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Post not found"})
	}
	if err := s.DB.Delete(&post).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to delete post"})
	}

	postID := post.ID
	s.logAdminActivity(user.ID, "delete", "blog_post", &postID, "", c)

	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Post deleted."})
}
