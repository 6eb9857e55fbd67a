package cartcontroller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niharikabutola/ECO-CART/models"
	"github.com/Niharikabutola/ECO-CART/services"
)

type fixedResolver struct{}

func (fixedResolver) Product(_ context.Context, id int) (models.Product, error) {
	return models.Product{
		ID:        id,
		Name:      "Bamboo Mug",
		Price:     12.5,
		Score:     80,
		EcoPoints: 120,
		InStock:   true,
	}, nil
}

func newTestRouter() (*gin.Engine, *services.CartService) {
	gin.SetMode(gin.TestMode)
	svc := services.NewCartService(fixedResolver{}, nil)

	r := gin.New()
	r.GET("/cart", GetCart(svc))
	r.POST("/cart/add", AddToCart(svc))
	r.PUT("/cart/update", UpdateCartItem(svc))
	r.DELETE("/cart/remove", RemoveCartItem(svc))
	r.GET("/cart/rewards", GetRewards(svc))
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddReturnsFullSnapshot(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/cart/add", `{"productId": 4, "quantity": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var snap models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.Contains(t, snap, "4")
	assert.Equal(t, 2, snap["4"].Quantity)
	assert.Equal(t, "Bamboo Mug", snap["4"].Product.Name)
}

func TestAddRejectsBadBodies(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/cart/add", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/cart/add", `{"productId": 4, "quantity": -2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateZeroQuantityRemoves(t *testing.T) {
	r, svc := newTestRouter()

	_, err := svc.Add(context.Background(), 4, 2)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/cart/update", `{"productId": 4, "quantity": 0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var snap models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.NotContains(t, snap, "4")
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodDelete, "/cart/remove", `{"productId": 42}`)
	require.Equal(t, http.StatusOK, w.Code)

	var snap models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Empty(t, snap)
}

func TestRewardsSummaryReflectsCart(t *testing.T) {
	r, svc := newTestRouter()

	_, err := svc.Add(context.Background(), 4, 3) // 360 eco points
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/cart/rewards", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalItems   int     `json:"totalItems"`
		TotalPrice   float64 `json:"totalPrice"`
		EcoPoints    int     `json:"ecoPoints"`
		AverageScore int     `json:"averageScore"`
		Tier         string  `json:"tier"`
		Discount     string  `json:"discount"`
		Progress     float64 `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 3, body.TotalItems)
	assert.InDelta(t, 37.5, body.TotalPrice, 1e-9)
	assert.Equal(t, 360, body.EcoPoints)
	assert.Equal(t, 80, body.AverageScore)
	assert.Equal(t, "Bronze", body.Tier)
	assert.Equal(t, "No discount yet", body.Discount)
	assert.InDelta(t, 72.0, body.Progress, 1e-9)
}
