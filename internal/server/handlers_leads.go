package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thedcode/backend/internal/models"
	"github.com/thedcode/backend/internal/utils"
)

type submitLeadRequest struct {
	Name        string  `json:"name" example:"Priya Sharma" binding:"required"`
	Email       string  `json:"email" example:"priya@example.com" binding:"required"`
	Phone       string  `json:"phone" example:"+91 98765 43210" binding:"required"`
	Location    string  `json:"location" example:"Mumbai" binding:"required"`
	Message     string  `json:"message" example:"Looking to redo a 3BHK." binding:"required"`
	CountryCode *string `json:"country_code" example:"+91"`
	CountryISO2 *string `json:"country_iso2" example:"IN"`
}

// SubmitLead godoc
// @Summary Submit a contact-form lead
// @Description Persist an inbound lead from the public contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body submitLeadRequest true "Lead data"
// @Success 200 {object} map[string]interface{} "Lead stored"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /submit-lead [post]
func (s *Server) SubmitLead(c echo.Context) error {
	var req submitLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Location = strings.TrimSpace(req.Location)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Location == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "All fields are required."})
	}
	if !utils.ValidateEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid email address format."})
	}
	if valid, msg := utils.ValidatePhone(req.Phone); !valid {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": msg})
	}

	source := "website"
	lead := models.Lead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Message:     req.Message,
		Status:      "new",
		Source:      &source,
		CountryCode: req.CountryCode,
		CountryISO2: req.CountryISO2,
	}
	if err := s.DB.Create(&lead).Error; err != nil {
		s.Log.Errorw("lead create failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to save lead."})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Lead submitted successfully.", "id": lead.ID})
}

// AdminListLeads godoc
// @Summary List leads
// @Description Retrieve leads with optional status filter and pagination
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Filter by status"
// @Param search query string false "Search by name or email"
// @Param from query string false "Created on or after (YYYY-MM-DD, UTC)"
// @Param to query string false "Created before (YYYY-MM-DD, UTC, exclusive)"
// @Success 200 {object} map[string]interface{} "List of leads"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /admin/leads [get]
func (s *Server) AdminListLeads(c echo.Context) error {
	user := c.Get("user").(*models.User)
	s.logAdminActivity(user.ID, "view", "leads", nil, "", c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.Lead{})
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.QueryParam("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if from := c.QueryParam("from"); from != "" {
		if ts, err := utils.ParseUTC("2006-01-02", from); err == nil {
			query = query.Where("created_at >= ?", ts)
		} else {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid from date, expected YYYY-MM-DD"})
		}
	}
	if to := c.QueryParam("to"); to != "" {
		if ts, err := utils.ParseUTC("2006-01-02", to); err == nil {
			query = query.Where("created_at < ?", ts)
		} else {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid to date, expected YYYY-MM-DD"})
		}
	}

	var total int64
	query.Count(&total)

	var leads []models.Lead
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&leads).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to fetch leads"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    leads,
		"pagination": map[string]any{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

type updateLeadRequest struct {
	Status           *string    `json:"status"`
	Priority         *string    `json:"priority"`
	Notes            *string    `json:"notes"`
	LastContactedAt  *time.Time `json:"last_contacted_at"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date"`
}

// AdminUpdateLead godoc
// @Summary Update a lead's workflow fields
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body updateLeadRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated lead"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/leads/{id} [put]
func (s *Server) AdminUpdateLead(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid lead ID"})
	}

	var lead models.Lead
	if err := s.DB.First(&lead, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Lead not found"})
	}

	var req updateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid payload"})
	}

	if req.Status != nil {
		validStatuses := map[string]bool{"new": true, "contacted": true, "qualified": true, "converted": true, "closed": true}
		if !validStatuses[*req.Status] {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid status"})
		}
		lead.Status = *req.Status
	}
	if req.Priority != nil {
		lead.Priority = req.Priority
	}
	if req.Notes != nil {
		lead.Notes = req.Notes
	}
	if req.LastContactedAt != nil {
		lead.LastContactedAt = req.LastContactedAt
	}
	if req.NextFollowUpDate != nil {
		lead.NextFollowUpDate = req.NextFollowUpDate
	}

	if err := s.DB.Save(&lead).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to update lead"})
	}

	leadID := lead.ID
	s.logAdminActivity(user.ID, "update", "lead", &leadID, "", c)

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": lead})
}

// AdminDeleteLead godoc
// @Summary Delete a lead
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} simpleResponse
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/leads/{id} [delete]
func (s *Server) AdminDeleteLead(c echo.Context) error {
	user := c.Get("user").(*models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid lead ID"})
	}

	var lead models.Lead
	if err := s.DB.First(&lead, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Lead not found"})
	}
	if err := s.DB.Delete(&lead).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to delete lead"})
	}

	leadID := lead.ID
	s.logAdminActivity(user.ID, "delete", "lead", &leadID, "", c)

	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Lead deleted."})
}
