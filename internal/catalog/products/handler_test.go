package products

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo *mockRepository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))

	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestCreateProductEndpoint(t *testing.T) {
	router := newTestRouter(newMockRepository())

	body := `{
		"name": "iPhone 15 Pro Max",
		"description": "Flagship phone",
		"price": 1199.999,
		"image_url": "https://images.example.com/iphone.jpg",
		"category": "Smartphones",
		"stock_quantity": 10
	}`
	req := httptest.NewRequest(http.MethodPost, "/createProduct", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, 1200.00, created.Price)
	assert.False(t, created.IsFeatured)
}

func TestCreateProductEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodPost, "/createProduct", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductEndpointRejectsInvalidInput(t *testing.T) {
	router := newTestRouter(newMockRepository())

	body := `{"name": "", "description": "d", "price": -1, "image_url": "x", "category": "c"}`
	req := httptest.NewRequest(http.MethodPost, "/createProduct", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation Failed")
}

func TestGetProductsByCategoryRequiresParam(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/getProductsByCategory", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "category is required")
}

func TestGetFeaturedProductsEmptyStoreSerializesEmptyArray(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/getFeaturedProducts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
