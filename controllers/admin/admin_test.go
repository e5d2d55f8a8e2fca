package adminControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	adminControllers "github.com/chirathr/ecommerce/controllers/admin"
	"github.com/chirathr/ecommerce/middleware"
	"github.com/chirathr/ecommerce/models"
	"github.com/chirathr/ecommerce/testutil"
)

const apiKey = "test-key"

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", middleware.RequireAPIKey(apiKey))
	admin.POST("/products", adminControllers.CreateProduct(db))
	admin.PUT("/products/:id", adminControllers.UpdateProduct(db))
	admin.DELETE("/products/:id", adminControllers.DeleteProduct(db))
	admin.POST("/categories", adminControllers.CreateCategory(db))
	return r
}

func do(r *gin.Engine, method, path, body, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-KEY", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyGuard(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newRouter(db)

	w := do(r, http.MethodPost, "/admin/categories", `{"name":"Fruits"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/admin/categories", `{"name":"Fruits"}`, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newRouter(db)

	t.Run("valid", func(t *testing.T) {
		w := do(r, http.MethodPost, "/admin/products",
			`{"name":"Notebook","price":120,"discount_percent":10,"rating":4,"quantity":50}`, apiKey)
		require.Equal(t, http.StatusCreated, w.Code)

		var product models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, int64(108), product.DiscountedPrice)
	})

	t.Run("discount out of range", func(t *testing.T) {
		w := do(r, http.MethodPost, "/admin/products",
			`{"name":"Bad","price":100,"discount_percent":120}`, apiKey)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		w := do(r, http.MethodPost, "/admin/products",
			`{"name":"Bad","price":100,"rating":6}`, apiKey)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := do(r, http.MethodPost, "/admin/products",
			`{"name":"Bad","price":100,"category_id":99}`, apiKey)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newRouter(db)

	w := do(r, http.MethodPost, "/admin/categories", `{"name":"Fruits"}`, apiKey)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/admin/categories", `{"name":"Fruits"}`, apiKey)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// Deleting a product must keep sold line items, with the product
// reference nulled out.
func TestDeleteProductKeepsOrderHistory(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := newRouter(db)

	user := models.User{Username: "alice", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Notebook", Price: 100, Quantity: 5}
	require.NoError(t, db.Create(&product).Error)

	order := models.Order{Reference: "ref", UserID: user.ID, Amount: 100}
	require.NoError(t, db.Create(&order).Error)
	line := models.OrderList{OrderID: order.ID, ProductID: &product.ID, Quantity: 1}
	require.NoError(t, db.Create(&line).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID, ProductID: product.ID, Quantity: 1}).Error)

	w := do(r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), "", apiKey)
	require.Equal(t, http.StatusOK, w.Code)

	var productCount int64
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	assert.Equal(t, int64(0), productCount)

	var gotLine models.OrderList
	require.NoError(t, db.First(&gotLine, line.ID).Error)
	assert.Nil(t, gotLine.ProductID, "line item survives with product reference nulled")
	assert.Equal(t, 1, gotLine.Quantity)

	var cartCount int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&cartCount).Error)
	assert.Equal(t, int64(0), cartCount, "cart rows for the product are removed")
}
