package cartControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	cartControllers "github.com/chirathr/ecommerce/controllers/cart"
	"github.com/chirathr/ecommerce/models"
	"github.com/chirathr/ecommerce/testutil"
)

func newUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "x", WalletBalance: 1000}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func newProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Quantity: stock}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddToCart(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		db := testutil.NewTestDB(t)
		user := newUser(t, db, "alice")

		_, err := cartControllers.AddToCart(db, user.ID, 42)
		assert.ErrorIs(t, err, cartControllers.ErrProductNotFound)
	})

	t.Run("zero stock", func(t *testing.T) {
		db := testutil.NewTestDB(t)
		user := newUser(t, db, "alice")
		product := newProduct(t, db, "Notebook", 100, 0)

		_, err := cartControllers.AddToCart(db, user.ID, product.ID)
		assert.ErrorIs(t, err, cartControllers.ErrCannotAdd)
	})

	t.Run("repeat adds increment up to stock", func(t *testing.T) {
		db := testutil.NewTestDB(t)
		user := newUser(t, db, "alice")
		product := newProduct(t, db, "Notebook", 100, 3)

		item, err := cartControllers.AddToCart(db, user.ID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity)

		item, err = cartControllers.AddToCart(db, user.ID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)

		item, err = cartControllers.AddToCart(db, user.ID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)

		// At the stock bound the next add is rejected.
		_, err = cartControllers.AddToCart(db, user.ID, product.ID)
		assert.ErrorIs(t, err, cartControllers.ErrCannotAdd)

		var count int64
		require.NoError(t, db.Model(&models.Cart{}).
			Where("user_id = ? AND product_id = ?", user.ID, product.ID).
			Count(&count).Error)
		assert.Equal(t, int64(1), count, "one row per (user, product)")
	})
}

func TestRemoveFromCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := newUser(t, db, "alice")
	product := newProduct(t, db, "Notebook", 100, 5)

	t.Run("unknown product", func(t *testing.T) {
		err := cartControllers.RemoveFromCart(db, user.ID, 42)
		assert.ErrorIs(t, err, cartControllers.ErrProductNotFound)
	})

	t.Run("no cart row", func(t *testing.T) {
		err := cartControllers.RemoveFromCart(db, user.ID, product.ID)
		assert.ErrorIs(t, err, cartControllers.ErrProductNotFound)
	})

	t.Run("deletes the row", func(t *testing.T) {
		_, err := cartControllers.AddToCart(db, user.ID, product.ID)
		require.NoError(t, err)

		require.NoError(t, cartControllers.RemoveFromCart(db, user.ID, product.ID))

		var count int64
		require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func newRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.GET("/cart/", cartControllers.GetCart(db))
	r.POST("/cart/add/", cartControllers.Add(db))
	r.POST("/cart/delete/", cartControllers.Remove(db))
	return r
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := newUser(t, db, "alice")
	product := newProduct(t, db, "Summer dress", 230, 3)
	r := newRouter(db, user.ID)

	t.Run("non-integer product id is not found", func(t *testing.T) {
		w := postForm(r, "/cart/add/", url.Values{"product": {"abc"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing product field is not found", func(t *testing.T) {
		w := postForm(r, "/cart/add/", url.Values{})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("add and read back with total", func(t *testing.T) {
		w := postForm(r, "/cart/add/", url.Values{"product": {"1"}})
		require.Equal(t, http.StatusOK, w.Code)

		req := httptest.NewRequest(http.MethodGet, "/cart/", nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []models.Cart `json:"items"`
			Total int64         `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, product.ID, resp.Items[0].ProductID)
		assert.Equal(t, int64(230), resp.Total)
	})

	t.Run("stock exhausted responds conflict", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("quantity", 1).Error)

		w := postForm(r, "/cart/add/", url.Values{"product": {"1"}})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		w := postForm(r, "/cart/delete/", url.Values{"product": {"1"}})
		assert.Equal(t, http.StatusOK, w.Code)

		w = postForm(r, "/cart/delete/", url.Values{"product": {"1"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
