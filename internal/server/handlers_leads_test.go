package server

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thedcode/backend/internal/models"
)

func submitLead(t *testing.T, s *Server, body map[string]string) (int, map[string]any) {
	t.Helper()
	c, rec := newTestContext(newJSONRequest(http.MethodPost, "/submit-lead", body))
	require.NoError(t, s.SubmitLead(c))
	return rec.Code, decodeBody(t, rec)
}

func validLeadForm() map[string]string {
	return map[string]string{
		"name":     "Priya Sharma",
		"email":    "Priya@Example.com",
		"phone":    "+91 98765 43210",
		"location": "Mumbai",
		"message":  "Looking to redo a 3BHK.",
	}
}

func TestSubmitLead_Success(t *testing.T) {
	s := newTestServer(t)

	code, body := submitLead(t, s, validLeadForm())
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])

	var lead models.Lead
	require.NoError(t, s.DB.First(&lead).Error)
	require.Equal(t, "priya@example.com", lead.Email)
	require.Equal(t, "new", lead.Status)
	require.NotNil(t, lead.Source)
	require.Equal(t, "website", *lead.Source)
}

func TestSubmitLead_Validation(t *testing.T) {
	s := newTestServer(t)

	missing := validLeadForm()
	missing["message"] = "   "
	code, body := submitLead(t, s, missing)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "All fields are required.", body["message"])

	badEmail := validLeadForm()
	badEmail["email"] = "priya@"
	code, body = submitLead(t, s, badEmail)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid email address format.", body["message"])

	badPhone := validLeadForm()
	badPhone["phone"] = "12345"
	code, _ = submitLead(t, s, badPhone)
	require.Equal(t, http.StatusBadRequest, code)
}

func seedLeads(t *testing.T, s *Server, n int, status string) {
	t.Helper()
	for i := 0; i < n; i++ {
		source := "website"
		require.NoError(t, s.DB.Create(&models.Lead{
			Name:     "Lead " + strconv.Itoa(i),
			Email:    "lead" + strconv.Itoa(i) + "@example.com",
			Phone:    "+91 98765 4321" + strconv.Itoa(i%10),
			Location: "Pune",
			Message:  "Inquiry",
			Status:   status,
			Source:   &source,
		}).Error)
	}
}

func TestAdminListLeads_FiltersAndPaginates(t *testing.T) {
	s := newTestServer(t)
	admin := createUser(t, s, "admin@thedcode.in", "correct-horse", "admin")
	seedLeads(t, s, 3, "new")
	seedLeads(t, s, 2, "contacted")

	c, rec := newTestContext(newJSONRequest(http.MethodGet, "/admin/leads?status=contacted&page=1&limit=1", nil))
	c.Set("user", admin)
	require.NoError(t, s.AdminListLeads(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	pagination := body["pagination"].(map[string]any)
	require.EqualValues(t, 2, pagination["total"])
	require.EqualValues(t, 1, pagination["limit"])
}

func TestAdminListLeads_DateRange(t *testing.T) {
	s := newTestServer(t)
	admin := createUser(t, s, "admin@thedcode.in", "correct-horse", "admin")

	source := "website"
	for day, name := range map[int]string{1: "May Lead", 15: "Mid-June Lead", 28: "Late-June Lead"} {
		month := time.June
		if day == 1 {
			month = time.May
		}
		require.NoError(t, s.DB.Create(&models.Lead{
			Name: name, Email: "lead@example.com", Phone: "+91 98765 43210",
			Location: "Pune", Message: "Inquiry", Status: "new", Source: &source,
			CreatedAt: time.Date(2025, month, day, 10, 0, 0, 0, time.UTC),
		}).Error)
	}

	list := func(query string) (int, map[string]any) {
		c, rec := newTestContext(newJSONRequest(http.MethodGet, "/admin/leads"+query, nil))
		c.Set("user", admin)
		require.NoError(t, s.AdminListLeads(c))
		return rec.Code, decodeBody(t, rec)
	}

	code, body := list("?from=2025-06-01&to=2025-06-20")
	require.Equal(t, http.StatusOK, code)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	require.Equal(t, "Mid-June Lead", data[0].(map[string]any)["name"])

	code, body = list("?from=01/06/2025")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Invalid from date, expected YYYY-MM-DD", body["message"])
}

func TestAdminUpdateLead_StatusWhitelist(t *testing.T) {
	s := newTestServer(t)
	admin := createUser(t, s, "admin@thedcode.in", "correct-horse", "admin")
	seedLeads(t, s, 1, "new")

	update := func(body map[string]any) (int, map[string]any) {
		c, rec := newTestContext(newJSONRequest(http.MethodPut, "/admin/leads/1", body))
		c.Set("user", admin)
		c.SetParamNames("id")
		c.SetParamValues("1")
		require.NoError(t, s.AdminUpdateLead(c))
		return rec.Code, decodeBody(t, rec)
	}

	code, _ := update(map[string]any{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, code)

	code, body := update(map[string]any{"status": "qualified", "notes": "site visit booked"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])

	var lead models.Lead
	require.NoError(t, s.DB.First(&lead, 1).Error)
	require.Equal(t, "qualified", lead.Status)
	require.NotNil(t, lead.Notes)
	require.Equal(t, "site visit booked", *lead.Notes)
}

func TestAdminDeleteLead(t *testing.T) {
	s := newTestServer(t)
	admin := createUser(t, s, "admin@thedcode.in", "correct-horse", "admin")
	seedLeads(t, s, 1, "new")

	del := func(id string) int {
		c, rec := newTestContext(newJSONRequest(http.MethodDelete, "/admin/leads/"+id, nil))
		c.Set("user", admin)
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, s.AdminDeleteLead(c))
		return rec.Code
	}

	code := del("1")
	require.Equal(t, http.StatusOK, code)

	var count int64
	s.DB.Model(&models.Lead{}).Count(&count)
	require.EqualValues(t, 0, count)

	code = del("1")
	require.Equal(t, http.StatusNotFound, code)
}
