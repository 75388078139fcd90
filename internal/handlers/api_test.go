package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/auth"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/config"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/routes"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/testdb"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db, cfg
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func register(t *testing.T, r *gin.Engine, email string) authResponse {
	t.Helper()

	w := do(r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":     email,
		"password":  "hunter22",
		"full_name": "Test Staffer",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func createCustomer(t *testing.T, r *gin.Engine, token string) models.Customer {
	t.Helper()

	w := do(r, http.MethodPost, "/api/v1/customers", token, gin.H{
		"name":    "Dana Reyes",
		"email":   "dana@example.com",
		"phone":   "+15550001",
		"address": "1 Bark Ave",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var customer models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	return customer
}

func createProvider(t *testing.T, r *gin.Engine, token string) models.ServiceProvider {
	t.Helper()

	w := do(r, http.MethodPost, "/api/v1/providers", token, gin.H{
		"name":  "Happy Paws",
		"email": "paws@example.com",
		"phone": "+15550002",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var provider models.ServiceProvider
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &provider))
	return provider
}

func serviceBody(customerID, providerID uint, start time.Time) gin.H {
	return gin.H{
		"customer_id":         customerID,
		"service_provider_id": providerID,
		"service_type":        "boarding",
		"start_date":          start,
		"end_date":            start.Add(48 * time.Hour),
		"start_time":          start,
		"end_time":            start.Add(2 * time.Hour),
		"total_price":         120.5,
		"handled_by":          "Sam",
	}
}

// --------------------------------------------------
// Auth
// --------------------------------------------------

func TestRegisterAndLogin(t *testing.T) {
	r, _, _ := setupAPI(t)

	registered := register(t, r, "staff@buddyboard.com")
	assert.Equal(t, models.RoleStaff, registered.User.Role)

	// duplicate email
	w := do(r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":     "staff@buddyboard.com",
		"password":  "hunter22",
		"full_name": "Dup",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// wrong password
	w = do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "staff@buddyboard.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// unknown email looks identical to wrong password
	w = do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@buddyboard.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "staff@buddyboard.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestMissingTokenRejected(t *testing.T) {
	r, _, _ := setupAPI(t)

	w := do(r, http.MethodGet, "/api/v1/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	r, _, cfg := setupAPI(t)

	registered := register(t, r, "staff@buddyboard.com")

	expired := auth.NewTokenManager(cfg.JWTSecret, -time.Minute)
	token, err := expired.Issue(registered.User.ID, registered.User.Email, registered.User.Role)
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/api/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsCaller(t *testing.T) {
	r, _, _ := setupAPI(t)

	registered := register(t, r, "staff@buddyboard.com")

	w := do(r, http.MethodGet, "/api/v1/me", registered.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, registered.User.ID, me.ID)
	assert.Equal(t, "staff@buddyboard.com", me.Email)
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func TestDeleteCustomerTwice(t *testing.T) {
	r, _, _ := setupAPI(t)
	token := register(t, r, "staff@buddyboard.com").Token

	customer := createCustomer(t, r, token)
	path := fmt.Sprintf("/api/v1/customers/%d", customer.ID)

	w := do(r, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, customer.Name, deleted.Name)

	w = do(r, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomerWithServicesRestricted(t *testing.T) {
	r, _, _ := setupAPI(t)
	token := register(t, r, "staff@buddyboard.com").Token

	customer := createCustomer(t, r, token)
	provider := createProvider(t, r, token)

	start := time.Now().UTC().Add(24 * time.Hour)
	w := do(r, http.MethodPost, "/api/v1/services", token, serviceBody(customer.ID, provider.ID, start))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/v1/customers/%d", customer.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func TestCreateServiceWithMissingReferences(t *testing.T) {
	r, db, _ := setupAPI(t)
	token := register(t, r, "staff@buddyboard.com").Token

	customer := createCustomer(t, r, token)

	start := time.Now().UTC()
	w := do(r, http.MethodPost, "/api/v1/services", token, serviceBody(customer.ID, 9999, start))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/v1/services", token, serviceBody(9999, customer.ID, start))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestServiceNegativePriceRejected(t *testing.T) {
	r, _, _ := setupAPI(t)
	token := register(t, r, "staff@buddyboard.com").Token

	customer := createCustomer(t, r, token)
	provider := createProvider(t, r, token)

	body := serviceBody(customer.ID, provider.ID, time.Now().UTC())
	body["total_price"] = -5.0

	w := do(r, http.MethodPost, "/api/v1/services", token, body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpcomingRejectsNegativeDays(t *testing.T) {
	r, _, _ := setupAPI(t)
	token := register(t, r, "staff@buddyboard.com").Token

	w := do(r, http.MethodGet, "/api/v1/services/upcoming?days=-1", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --------------------------------------------------
// Tasks
// --------------------------------------------------

func TestCompletedTaskLeavesPendingList(t *testing.T) {
	r, _, _ := setupAPI(t)
	token := register(t, r, "staff@buddyboard.com").Token

	customer := createCustomer(t, r, token)
	provider := createProvider(t, r, token)

	start := time.Now().UTC().Add(24 * time.Hour)
	w := do(r, http.MethodPost, "/api/v1/services", token, serviceBody(customer.ID, provider.ID, start))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var svc models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svc))

	taskBody := gin.H{
		"service_id": svc.ID,
		"title":      "evening feeding",
		"due_date":   start.Add(8 * time.Hour),
	}
	w = do(r, http.MethodPost, "/api/v1/tasks", token, taskBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.False(t, task.IsCompleted)

	w = do(r, http.MethodGet, "/api/v1/tasks/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pending []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.Len(t, pending, 1)

	taskBody["is_completed"] = true
	w = do(r, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d", task.ID), token, taskBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/tasks/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	pending = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Empty(t, pending)
}

// --------------------------------------------------
// Notifications
// --------------------------------------------------

func TestNotificationOwnership(t *testing.T) {
	r, _, _ := setupAPI(t)

	userU := register(t, r, "u@buddyboard.com")
	userV := register(t, r, "v@buddyboard.com")

	// U creates a notification addressed to V.
	w := do(r, http.MethodPost, "/api/v1/notifications", userU.Token, gin.H{
		"user_id": userV.User.ID,
		"title":   "shift change",
		"message": "You are on the morning shift tomorrow.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var notification models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notification))

	readPath := fmt.Sprintf("/api/v1/notifications/%d/read", notification.ID)
	getPath := fmt.Sprintf("/api/v1/notifications/%d", notification.ID)

	// U cannot read, mark or delete V's notification.
	w = do(r, http.MethodGet, getPath, userU.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPatch, readPath, userU.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodDelete, getPath, userU.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// V can.
	w = do(r, http.MethodPatch, readPath, userV.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var read models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &read))
	assert.True(t, read.IsRead)
}

func TestUnreadNeverLeaksAcrossUsers(t *testing.T) {
	r, _, _ := setupAPI(t)

	userU := register(t, r, "u@buddyboard.com")
	userV := register(t, r, "v@buddyboard.com")

	// An earlier unread notification for V, then one for U.
	w := do(r, http.MethodPost, "/api/v1/notifications", userU.Token, gin.H{
		"user_id": userV.User.ID,
		"title":   "for V",
		"message": "first",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/v1/notifications", userV.Token, gin.H{
		"user_id": userU.User.ID,
		"title":   "for U",
		"message": "second",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/api/v1/notifications/unread", userU.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var unread []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unread))
	require.Len(t, unread, 1)
	assert.Equal(t, userU.User.ID, unread[0].UserID)
	assert.Equal(t, "for U", unread[0].Title)
}

func TestCreateNotificationForMissingUser(t *testing.T) {
	r, _, _ := setupAPI(t)
	token := register(t, r, "staff@buddyboard.com").Token

	w := do(r, http.MethodPost, "/api/v1/notifications", token, gin.H{
		"user_id": 9999,
		"title":   "ghost",
		"message": "nobody home",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
