package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	f := newFixture(t)
	r := chi.NewRouter()
	NewHandler(f.cart).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSessionEndpointMintsIDs(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/cart/session", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["sessionId"])
}

func TestCartRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1,"quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/cart/s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []ItemWithProduct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, "Bowl", items[0].Product.Name)

	rec = doJSON(t, r, http.MethodDelete, "/api/cart/s1/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/cart/s1/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCartRejectsBadBody(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/cart", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1,"quantity":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCartItemRespondsSuccess(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1,"quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/api/cart/s1/1", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestUpdateCartItemQuantityRules(t *testing.T) {
	r := newTestRouter(t)

	// Missing and negative quantities are rejected outright.
	rec := doJSON(t, r, http.MethodPut, "/api/cart/s1/1", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, r, http.MethodPut, "/api/cart/s1/1", `{"quantity":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// A positive update on a missing line is a 404.
	rec = doJSON(t, r, http.MethodPut, "/api/cart/s1/1", `{"quantity":3}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Zeroing a missing line is already the requested end state.
	rec = doJSON(t, r, http.MethodPut, "/api/cart/s1/1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestClearCartEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1,"quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/cart/s1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/cart/s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []ItemWithProduct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Empty(t, items)
}
