package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/assistant"
	"storefront/internal/catalog"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func ptr(v float64) *float64 { return &v }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Product{
		{ID: 1, Name: "Bolsa Tote", Category: "Bolsas", Brand: "Michael Kors", Price: 500, Rating: 4.5, Images: []string{"a"}, Stock: 3},
		{ID: 2, Name: "Tenis Urbanos", Category: "Tenis", Brand: "Tory Burch", Price: 400, DiscountPrice: ptr(300), Rating: 4.9, Images: []string{"b"}, Stock: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// newTestRouter wires the same routes main does, against a fixture catalog
// and whatever assistant client the test supplies.
func newTestRouter(t *testing.T, client *assistant.Client) *gin.Engine {
	t.Helper()

	cat := testCatalog(t)
	store := session.NewStore(time.Hour)
	if client == nil {
		client = assistant.NewClient("", "test-model")
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.POST("/session", CreateSession(store, testSecret, time.Hour))
	r.GET("/products", GetProducts(cat))
	r.GET("/products/:id", GetProduct(cat))
	r.GET("/categories", GetCategories(cat))
	r.GET("/brands", GetBrands(cat))
	r.POST("/api/generate", RelayGenerate(client))

	shopper := r.Group("/")
	shopper.Use(middleware.SessionAuth(testSecret, store))
	{
		shopper.GET("/cart", GetCart())
		shopper.POST("/cart/items", AddCartItem(cat))
		shopper.PUT("/cart/items/:productId", UpdateCartItem())
		shopper.DELETE("/cart/items/:productId", RemoveCartItem())
		shopper.DELETE("/cart", ClearCart())
		shopper.POST("/cart/coupon", ApplyCoupon())
		shopper.GET("/favorites", GetFavorites())
		shopper.POST("/favorites/:productId", ToggleFavorite())
		shopper.POST("/checkout/validate", ValidateCheckout())
		shopper.POST("/checkout", SubmitCheckout())
		shopper.GET("/navigation", GetNavigation(cat))
		shopper.POST("/navigation/goto", GoToPage(cat))
		shopper.POST("/navigation/select-product", SelectProduct(cat))
		shopper.POST("/navigation/select-category", SelectCategory(cat))
		shopper.POST("/navigation/search", SearchProducts(cat))
		shopper.GET("/currency", GetCurrency())
		shopper.PUT("/currency", SetCurrency())
		shopper.POST("/assistant/chat", ChatWithAssistant(client))
		shopper.GET("/assistant/messages", GetAssistantMessages())
	}
	return r
}

func createSessionToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("session creation failed with %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Fatal("empty session token")
	}
	return resp.Token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
