package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	ctrl, _ := NewModule(zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/products", ctrl.HandleListProducts)
	r.Get("/api/products/{code}", ctrl.HandleGetProduct)
	return r
}

func TestHandleListProducts(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response ListProductsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.Products, 2)
	assert.Equal(t, "8648P", response.Products[0].Code)
	assert.Equal(t, "7979O", response.Products[1].Code)
}

func TestHandleGetProduct(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products/8648P", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var product ProductDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&product))
	assert.Equal(t, "Tribal Cross Matte", product.Name)
	assert.Equal(t, "2,199 BDT", product.OfferPrice)
}

func TestHandleGetProduct_Unknown(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products/0000X", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
