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
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"studiobook/internal/database"
	"studiobook/internal/domain"
	"studiobook/internal/middleware"
	"studiobook/internal/modules/analytics"
	"studiobook/internal/modules/auth"
	"studiobook/internal/modules/booking"
	"studiobook/internal/modules/dashboard"
	"studiobook/internal/modules/equipment"
	"studiobook/internal/modules/payment"
	"studiobook/internal/modules/settings"
	"studiobook/internal/modules/users"
	jwtsvc "studiobook/internal/pkg/jwt"
	"studiobook/internal/realtime"
	"studiobook/internal/repository"
)

type testSuite struct {
	router   *gin.Engine
	userRepo *repository.UserRepository
}

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)

	logger := zerolog.Nop()

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	for _, m := range []interface{ AutoMigrate() error }{
		userRepo, bookingRepo, equipmentRepo, paymentRepo, settingsRepo,
	} {
		require.NoError(t, m.AutoMigrate())
	}

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	hub := realtime.NewHub()
	t.Cleanup(hub.Close)
	feed := realtime.NewBookingFeed(hub)

	settingsService := settings.NewService(settingsRepo, logger)
	authService := auth.NewService(userRepo, j, settingsService, logger)
	bookingService := booking.NewService(bookingRepo, equipmentRepo, userRepo, settingsService, feed, logger)
	equipmentService := equipment.NewService(equipmentRepo, logger)
	paymentService := payment.NewService(paymentRepo, bookingRepo, settingsService, 0, logger)
	usersService := users.NewService(userRepo, bookingRepo, logger)
	analyticsService := analytics.NewService(bookingRepo, equipmentRepo, userRepo, logger)
	dashboardService := dashboard.NewService(bookingRepo, paymentRepo, equipmentService, analyticsService, userRepo, logger)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		auth.NewHandler(authService).RegisterRoutes(v1)
		equipment.NewHandler(equipmentService).RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			auth.NewHandler(authService).RegisterProtectedRoutes(protected)
			equipment.NewHandler(equipmentService).RegisterProtectedRoutes(protected)
			booking.NewHandler(bookingService).RegisterRoutes(protected)
			payment.NewHandler(paymentService).RegisterRoutes(protected)
			users.NewHandler(usersService).RegisterRoutes(protected)
			settings.NewHandler(settingsService).RegisterRoutes(protected)
			analytics.NewHandler(analyticsService).RegisterRoutes(protected)
			dashboard.NewHandler(dashboardService).RegisterRoutes(protected)
		}
	}

	return &testSuite{router: r, userRepo: userRepo}
}

func (s *testSuite) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
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

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

// seedUser writes directly through the repository so tests can create
// STAFF/ADMIN accounts without going through registration.
func (s *testSuite) seedUser(t *testing.T, email, password string, role domain.UserRole) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, s.userRepo.Create(t.Context(), &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Seeded " + string(role),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}))
	return s.login(t, email, password)
}

func (s *testSuite) login(t *testing.T, email, password string) string {
	t.Helper()

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := env.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *testSuite) register(t *testing.T, email, password, name string) string {
	t.Helper()

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": name,
		"email":     email,
		"password":  password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := env.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuthFlow(t *testing.T) {
	s := setupSuite(t)

	token := s.register(t, "jane@example.com", "secret123", "Jane Doe")

	// Duplicate registration is rejected.
	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": "Impostor",
		"email":     "jane@example.com",
		"password":  "secret456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMAIL_TAKEN", env.Error.Code)

	// Profile round trip.
	w, env = s.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := env.Data["user"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", user["email"])
	assert.Equal(t, "CLIENT", user["role"])

	// No token means 401.
	w, _ = s.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingFlow(t *testing.T) {
	s := setupSuite(t)

	adminToken := s.seedUser(t, "admin@example.com", "Admin123!", domain.RoleAdmin)
	clientToken := s.register(t, "client@example.com", "secret123", "Jane Doe")

	// Admin stocks the catalog.
	w, env := s.do(t, http.MethodPost, "/api/v1/equipment", adminToken, gin.H{
		"name":           "Canon EOS R5",
		"category":       "Camera",
		"price_per_hour": 50.0,
		"is_available":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	eq := env.Data["equipment"].(map[string]interface{})
	eqID := eq["id"].(string)

	// Clients cannot manage the catalog.
	w, _ = s.do(t, http.MethodPost, "/api/v1/equipment", clientToken, gin.H{
		"name": "Contraband", "price_per_hour": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The client books four hours with the camera.
	w, env = s.do(t, http.MethodPost, "/api/v1/bookings", clientToken, gin.H{
		"studio":        "STUDIO_A",
		"start_time":    "10:00",
		"end_time":      "14:00",
		"equipment_ids": []string{eqID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bk := env.Data["booking"].(map[string]interface{})
	bookingID := bk["id"].(string)
	assert.Equal(t, float64(4), bk["total_hours"])
	assert.Equal(t, float64(200), bk["total_amount"])
	assert.Equal(t, "PENDING", bk["status"])

	// Overlapping window in the same studio on the same day is rejected.
	w, env = s.do(t, http.MethodPost, "/api/v1/bookings", clientToken, gin.H{
		"studio":     "STUDIO_A",
		"date":       bk["date"],
		"start_time": "12:00",
		"end_time":   "16:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BOOKING_CONFLICT", env.Error.Code)

	// A catalog price change does not touch the frozen amount.
	w, _ = s.do(t, http.MethodPut, "/api/v1/equipment/"+eqID, adminToken, gin.H{
		"name":           "Canon EOS R5",
		"category":       "Camera",
		"price_per_hour": 500.0,
		"is_available":   true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/v1/bookings/"+bookingID, clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bk = env.Data["booking"].(map[string]interface{})
	assert.Equal(t, float64(200), bk["total_amount"])

	// Lifecycle: skipping steps is rejected, stepping through works.
	w, env = s.do(t, http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", adminToken, gin.H{"status": "COMPLETED"})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)

	for _, status := range []string{"CONFIRMED", "IN_PROGRESS", "COMPLETED"} {
		w, env = s.do(t, http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", adminToken, gin.H{"status": status})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, status, env.Data["booking"].(map[string]interface{})["status"])
	}

	// Re-sending the final status is an idempotent success.
	w, _ = s.do(t, http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", adminToken, gin.H{"status": "COMPLETED"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Clients may not hit the staff listing.
	w, _ = s.do(t, http.MethodGet, "/api/v1/bookings", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/v1/bookings/my", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.Data["bookings"], 1)
}

func TestPaymentFlow(t *testing.T) {
	s := setupSuite(t)

	clientToken := s.register(t, "client@example.com", "secret123", "Jane Doe")

	w, env := s.do(t, http.MethodPost, "/api/v1/bookings", clientToken, gin.H{
		"studio":     "STUDIO_B",
		"start_time": "10:00",
		"end_time":   "12:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := env.Data["booking"].(map[string]interface{})["id"].(string)

	// Card methods demand valid card details.
	w, env = s.do(t, http.MethodPost, "/api/v1/payments", clientToken, gin.H{
		"booking_id":     bookingID,
		"amount":         100.0,
		"payment_method": "CREDIT_CARD",
		"card": gin.H{
			"card_number": "4111",
			"expiry_date": "12/25",
			"cvv":         "123",
			"card_holder": "Jane Doe",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CARD", env.Error.Code)

	// A proper settlement returns 200 whatever the gateway decides.
	w, env = s.do(t, http.MethodPost, "/api/v1/payments", clientToken, gin.H{
		"booking_id":     bookingID,
		"amount":         100.0,
		"payment_method": "CREDIT_CARD",
		"card": gin.H{
			"card_number": "4111 1111 1111 1111",
			"expiry_date": "12/25",
			"cvv":         "123",
			"card_holder": "Jane Doe",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p := env.Data["payment"].(map[string]interface{})
	assert.Contains(t, []string{"COMPLETED", "FAILED"}, p["status"])
	assert.Contains(t, p["transaction_id"], "TXN")

	w, env = s.do(t, http.MethodGet, "/api/v1/payments/my", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.Data["payments"], 1)

	// Unknown booking is a 404.
	w, env = s.do(t, http.MethodPost, "/api/v1/payments", clientToken, gin.H{
		"booking_id":     "missing",
		"amount":         100.0,
		"payment_method": "CASH",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardsAndRoleGates(t *testing.T) {
	s := setupSuite(t)

	adminToken := s.seedUser(t, "admin@example.com", "Admin123!", domain.RoleAdmin)
	staffToken := s.seedUser(t, "staff@example.com", "Staff123!", domain.RoleStaff)
	clientToken := s.register(t, "client@example.com", "secret123", "Jane Doe")

	// Every role gets a dashboard shaped for it.
	for _, token := range []string{adminToken, staffToken, clientToken} {
		w, env := s.do(t, http.MethodGet, "/api/v1/dashboard", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotNil(t, env.Data["dashboard"])
	}

	// Analytics summary is admin-only.
	w, _ := s.do(t, http.MethodGet, "/api/v1/analytics/summary", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, env := s.do(t, http.MethodGet, "/api/v1/analytics/summary", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, env.Data["summary"])

	// Reports are for staff and admins.
	for _, kind := range []string{"bookings", "revenue", "equipment", "clients", "staff"} {
		w, env = s.do(t, http.MethodGet, "/api/v1/reports/"+kind+"?range=month", staffToken, nil)
		require.Equal(t, http.StatusOK, w.Code, "kind=%s body=%s", kind, w.Body.String())
		assert.NotNil(t, env.Data["report"])
	}
	w, env = s.do(t, http.MethodGet, "/api/v1/reports/nonsense", staffToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// User management is admin-only.
	w, _ = s.do(t, http.MethodGet, "/api/v1/users", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, env = s.do(t, http.MethodGet, "/api/v1/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.Data["users"], 3)

	// Client list is visible to staff.
	w, env = s.do(t, http.MethodGet, "/api/v1/clients", staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.Data["clients"], 1)
}

func TestSystemConfigGovernsBehavior(t *testing.T) {
	s := setupSuite(t)

	adminToken := s.seedUser(t, "admin@example.com", "Admin123!", domain.RoleAdmin)
	clientToken := s.register(t, "client@example.com", "secret123", "Jane Doe")

	// Fetch defaults, disable Studio C and registrations, save.
	w, env := s.do(t, http.MethodGet, "/api/v1/system-config", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cfg := env.Data["config"].(map[string]interface{})
	cfg["studio_c_enabled"] = false
	cfg["allow_new_registrations"] = false

	w, _ = s.do(t, http.MethodPut, "/api/v1/system-config", adminToken, cfg)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The disabled studio rejects bookings.
	w, env = s.do(t, http.MethodPost, "/api/v1/bookings", clientToken, gin.H{
		"studio":     "STUDIO_C",
		"start_time": "10:00",
		"end_time":   "12:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "STUDIO_DISABLED", env.Error.Code)

	// Registration is closed.
	w, env = s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": "Late Arrival",
		"email":     "late@example.com",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "REGISTRATIONS_CLOSED", env.Error.Code)

	// Config endpoints are off-limits to clients.
	w, _ = s.do(t, http.MethodGet, "/api/v1/system-config", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserSettings(t *testing.T) {
	s := setupSuite(t)

	clientToken := s.register(t, "client@example.com", "secret123", "Jane Doe")

	// Defaults come back before anything is saved.
	w, env := s.do(t, http.MethodGet, "/api/v1/settings", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := env.Data["settings"].(map[string]interface{})
	assert.Equal(t, true, st["notifications_enabled"])

	w, env = s.do(t, http.MethodPut, "/api/v1/settings", clientToken, gin.H{
		"preferred_studio": "STUDIO_D",
		"dark_mode":        true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	st = env.Data["settings"].(map[string]interface{})
	assert.Equal(t, "STUDIO_D", st["preferred_studio"])
	assert.Equal(t, true, st["dark_mode"])
}
