package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"sharksports/internal/database"
	"sharksports/internal/middleware"
	"sharksports/internal/modules/auth"
	"sharksports/internal/modules/booking"
	"sharksports/internal/modules/dashboard"
	"sharksports/internal/modules/notification"
	"sharksports/internal/modules/report"
	"sharksports/internal/modules/vendor"
	"sharksports/internal/modules/venue"
	jwtsvc "sharksports/internal/pkg/jwt"
	"sharksports/internal/repository"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	hub := notification.NewHub()
	t.Cleanup(hub.Close)
	notifService := notification.NewService(notifRepo, hub)
	notifHandler := notification.NewHandler(notifService)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	venueHandler := venue.NewHandler(venue.NewService(venueRepo, activityRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, venueRepo, activityRepo, notifService, nil))
	vendorHandler := vendor.NewHandler(vendor.NewService(userRepo, activityRepo))
	reportHandler := report.NewHandler(report.NewService(bookingRepo, statsRepo, activityRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(statsRepo, activityRepo, nil))

	r := gin.New()
	api := r.Group("/api")
	authHandler.RegisterRoutes(api)

	protected := api.Group("/")
	protected.Use(middleware.RequireAuth(jwtService))
	venueHandler.RegisterRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	reportHandler.RegisterRoutes(protected)
	dashboardHandler.RegisterRoutes(protected)
	notifHandler.RegisterRoutes(protected)

	admin := protected.Group("/")
	admin.Use(middleware.AdminOnly())
	vendorHandler.RegisterRoutes(admin)

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService}
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s *E2ETestSuite) register(t *testing.T, name, email, role string) string {
	t.Helper()
	w, _ := s.request(t, "POST", "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := s.request(t, "POST", "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *E2ETestSuite) createVenue(t *testing.T, token, name, location string) int64 {
	t.Helper()
	w, resp := s.request(t, "POST", "/api/venues", token, map[string]any{
		"name":       name,
		"location":   location,
		"sports":     []string{"cricket"},
		"base_price": 1000,
		"capacity":   22,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	v := resp.Data["venue"].(map[string]interface{})
	return int64(v["id"].(float64))
}

func bookingPayload(venueID int64, date, start, end string) map[string]any {
	return map[string]any{
		"venue_id":       venueID,
		"customer_name":  "Rahul Sharma",
		"customer_email": "rahul@example.com",
		"booking_date":   date,
		"start_time":     start,
		"end_time":       end,
		"total_amount":   2000,
	}
}

func TestVendorIsolation(t *testing.T) {
	s := setupTestSuite(t)

	tokenA := s.register(t, "Vendor A", "a@example.com", "vendor")
	tokenB := s.register(t, "Vendor B", "b@example.com", "vendor")

	venueA := s.createVenue(t, tokenA, "A Cricket Ground", "MG Road")
	venueB := s.createVenue(t, tokenB, "B Football Field", "Whitefield")

	// each vendor lists only their own venue
	w, resp := s.request(t, "GET", "/api/venues", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["venues"], 1)

	// B cannot see or touch A's venue; 404, not 403
	w, _ = s.request(t, "GET", fmt.Sprintf("/api/venues/%d", venueA), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.request(t, "DELETE", fmt.Sprintf("/api/venues/%d", venueA), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// B cannot create a booking against A's venue
	w, _ = s.request(t, "POST", "/api/bookings", tokenB,
		bookingPayload(venueA, "2026-09-15", "10:00", "12:00"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// bookings lists are disjoint
	w, _ = s.request(t, "POST", "/api/bookings", tokenA,
		bookingPayload(venueA, "2026-09-15", "10:00", "12:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = s.request(t, "POST", "/api/bookings", tokenB,
		bookingPayload(venueB, "2026-09-15", "10:00", "12:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = s.request(t, "GET", "/api/bookings", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["bookings"], 1)
}

func TestBookingConflicts(t *testing.T) {
	s := setupTestSuite(t)

	token := s.register(t, "Vendor", "v@example.com", "vendor")

	// two venue listings over the same physical ground
	morning := s.createVenue(t, token, "Morning Cricket", "MG Road, Bengaluru")
	evening := s.createVenue(t, token, "Evening Football", "MG Road, Bengaluru")
	elsewhere := s.createVenue(t, token, "Tennis Court", "Indiranagar")

	w, _ := s.request(t, "POST", "/api/bookings", token,
		bookingPayload(morning, "2026-09-15", "10:00", "12:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// overlap on the same venue
	w, resp := s.request(t, "POST", "/api/bookings", token,
		bookingPayload(morning, "2026-09-15", "11:00", "13:00"))
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)

	// overlap through the shared location, different venue row
	w, _ = s.request(t, "POST", "/api/bookings", token,
		bookingPayload(evening, "2026-09-15", "09:30", "10:30"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// back-to-back is allowed
	w, _ = s.request(t, "POST", "/api/bookings", token,
		bookingPayload(morning, "2026-09-15", "12:00", "14:00"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// same slot, different date
	w, _ = s.request(t, "POST", "/api/bookings", token,
		bookingPayload(morning, "2026-09-16", "10:00", "12:00"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// same slot, different physical location
	w, _ = s.request(t, "POST", "/api/bookings", token,
		bookingPayload(elsewhere, "2026-09-15", "10:00", "12:00"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestAdminSurface(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.register(t, "Admin", "admin@example.com", "admin")
	vendorToken := s.register(t, "Vendor", "v@example.com", "vendor")
	s.createVenue(t, vendorToken, "V Cricket Ground", "MG Road")

	// vendor management is admin-only
	w, resp := s.request(t, "GET", "/api/vendors", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["vendors"], 1)

	w, _ = s.request(t, "GET", "/api/vendors", vendorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin sees every venue
	w, resp = s.request(t, "GET", "/api/venues", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["venues"], 1)

	// dashboards and reports answer for both roles
	w, _ = s.request(t, "GET", "/api/dashboard/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.request(t, "GET", "/api/dashboard/stats", vendorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.request(t, "GET", "/api/reports?type=venues", vendorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// unauthenticated requests bounce
	w, _ = s.request(t, "GET", "/api/venues", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingLifecycleAndNotifications(t *testing.T) {
	s := setupTestSuite(t)

	token := s.register(t, "Vendor", "v@example.com", "vendor")
	venueID := s.createVenue(t, token, "V Cricket Ground", "MG Road")

	w, resp := s.request(t, "POST", "/api/bookings", token,
		bookingPayload(venueID, "2026-09-15", "10:00", "12:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := resp.Data["booking"].(map[string]interface{})
	bookingID := int64(b["id"].(float64))
	assert.Equal(t, "confirmed", b["booking_status"])
	assert.Equal(t, "pending", b["payment_status"])

	// cancel it
	w, _ = s.request(t, "PUT", fmt.Sprintf("/api/bookings/%d", bookingID), token,
		map[string]any{"booking_status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the slot opens up again
	w, _ = s.request(t, "POST", "/api/bookings", token,
		bookingPayload(venueID, "2026-09-15", "10:00", "12:00"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// creation and cancellation both left a notification
	w, resp = s.request(t, "GET", "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notifs := resp.Data["notifications"].([]interface{})
	assert.GreaterOrEqual(t, len(notifs), 2)

	w, resp = s.request(t, "GET", "/api/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, resp.Data["unread_count"].(float64), float64(2))
}
