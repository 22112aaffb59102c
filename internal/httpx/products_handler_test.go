package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ariefcatur/go-product-table.git/internal/products"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(seed ...products.Product) http.Handler {
	r := NewRouter()
	h := &ProductsHandler{Repo: products.NewMemoryRepo(seed...), Service: "test"}
	h.Register(r)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListProducts(t *testing.T) {
	h := newTestHandler(
		products.Product{ID: 1, Name: "a", Status: products.StatusIn},
		products.Product{ID: 2, Name: "b", Status: products.StatusLow},
	)

	w := doJSON(t, h, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []products.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, products.StatusLow, out[1].Status)
}

func TestListProductsEmptyIsArray(t *testing.T) {
	w := doJSON(t, newTestHandler(), http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCreateProductReturnsProductID(t *testing.T) {
	h := newTestHandler(products.Product{ID: 4, Name: "seed"})

	w := doJSON(t, h, http.MethodPost, "/products",
		`{"name":"Caneca","price":19.9,"category":"Cozinha","quantity":10,"status":"in","rating":4}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ProductID int64 `json:"productId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ProductID)

	list := doJSON(t, h, http.MethodGet, "/products", "")
	var out []products.Product
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Caneca", out[1].Name)
}

func TestCreateProductInvalidJSON(t *testing.T) {
	w := doJSON(t, newTestHandler(), http.MethodPost, "/products", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestUpdateProduct(t *testing.T) {
	h := newTestHandler(products.Product{ID: 1, Name: "a"})

	w := doJSON(t, h, http.MethodPut, "/products/1", `{"name":"a2","status":"out"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "product updated")

	list := doJSON(t, h, http.MethodGet, "/products", "")
	var out []products.Product
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &out))
	assert.Equal(t, "a2", out[0].Name)
	assert.Equal(t, products.StatusOut, out[0].Status)
}

func TestUpdateUnknownProduct(t *testing.T) {
	w := doJSON(t, newTestHandler(), http.MethodPut, "/products/9", `{"name":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestDeleteProduct(t *testing.T) {
	h := newTestHandler(products.Product{ID: 1}, products.Product{ID: 2})

	w := doJSON(t, h, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "product deleted")

	list := doJSON(t, h, http.MethodGet, "/products", "")
	var out []products.Product
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestDeleteWithBadID(t *testing.T) {
	w := doJSON(t, newTestHandler(), http.MethodDelete, "/products/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}
