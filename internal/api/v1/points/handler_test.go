package points_test

import (
	"bytes"
	"encoding/json"
	"familypoints-backend/internal/api/v1/points"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/middleware"
	"familypoints-backend/internal/models"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.Migrator().DropTable(&models.PointsAccount{}, &models.PointTransaction{})
	if err := db.AutoMigrate(&models.PointsAccount{}, &models.PointTransaction{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	database.DB = db
	database.RedisClient = nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	points.RegisterRoutes(router.Group("/api"), middleware.AdminAuth(false))
	return router
}

func TestMutateAndGetPoints(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedTotal  int
	}{
		{
			name:           "Add points",
			body:           `{"type":"add","amount":10,"reason":"Devoirs faits"}`,
			expectedStatus: http.StatusOK,
			expectedTotal:  10,
		},
		{
			name:           "Remove points",
			body:           `{"type":"remove","amount":3,"reason":"Bêtise"}`,
			expectedStatus: http.StatusOK,
			expectedTotal:  7,
		},
		{
			name:           "Unknown type rejected",
			body:           `{"type":"steal","amount":3,"reason":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing reason rejected",
			body:           `{"type":"add","amount":3}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Zero amount rejected",
			body:           `{"type":"add","amount":0,"reason":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/points", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp struct {
				Status int                  `json:"status"`
				Data   points.TotalResponse `json:"data"`
			}
			json.Unmarshal(w.Body.Bytes(), &resp)
			assert.Equal(t, 200, resp.Status)
			assert.Equal(t, tt.expectedTotal, resp.Data.TotalPoints)
		})
	}

	// The history lists both mutations, newest first.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/points", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status int                   `json:"status"`
		Data   points.PointsResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 7, resp.Data.TotalPoints)
	assert.Len(t, resp.Data.Transactions, 2)
	assert.Equal(t, "remove", resp.Data.Transactions[0].Type)
	assert.Equal(t, "Bêtise", resp.Data.Transactions[0].Reason)
}

func TestSetPointsOverwritesWithoutHistory(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/points", bytes.NewBufferString(`{"totalPoints":42}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/points", nil)
	router.ServeHTTP(w, req)

	var resp struct {
		Data points.PointsResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 42, resp.Data.TotalPoints)
	assert.Empty(t, resp.Data.Transactions)
}

func TestDeleteTransaction(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/points", bytes.NewBufferString(`{"type":"add","amount":5,"reason":"Test"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var tx models.PointTransaction
	assert.NoError(t, database.DB.First(&tx).Error)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"Missing id", "", http.StatusBadRequest},
		{"Unknown id", "?id=999", http.StatusNotFound},
		{"Existing id", fmt.Sprintf("?id=%d", tx.ID), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("DELETE", "/api/points"+tt.query, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	// Deleting history never rewrites the total.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/points", nil)
	router.ServeHTTP(w, req)
	var resp struct {
		Data points.PointsResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 5, resp.Data.TotalPoints)
	assert.Empty(t, resp.Data.Transactions)
}

func TestAdminGuardBlocksMutationsWhenEnabled(t *testing.T) {
	setupTestDB(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	points.RegisterRoutes(router.Group("/api"), middleware.AdminAuth(true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/points", bytes.NewBufferString(`{"type":"add","amount":5,"reason":"Test"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Reads stay open.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/points", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
