package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ourkitchen/backend/internal/mocks"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

const adminToken = "admin-token"

// testDeps bundles the mocks behind a router built by setupTestRouter.
type testDeps struct {
	auth         *mocks.MockAuthService
	recipes      *mocks.MockRecipeService
	ingredients  *mocks.MockIngredientService
	shoppingList *mocks.MockShoppingListService
}

func setupTestRouter(t *testing.T) (*gin.Engine, *testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := &testDeps{
		auth:         new(mocks.MockAuthService),
		recipes:      new(mocks.MockRecipeService),
		ingredients:  new(mocks.MockIngredientService),
		shoppingList: new(mocks.MockShoppingListService),
	}
	deps.auth.On("ValidateToken", adminToken).Return(&types.TokenClaims{Role: types.RoleAdmin}, nil).Maybe()

	router := gin.New()
	RegisterRoutes(router, Dependencies{
		Auth:         deps.auth,
		Recipes:      deps.recipes,
		Ingredients:  deps.ingredients,
		ShoppingList: deps.shoppingList,
	})
	return router, deps
}

// PerformRequest sends body as JSON, or no body when it is nil. A raw string
// body is sent as is.
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	return PerformRequestWithToken(router, method, path, body, "")
}

// PerformRequestWithToken is PerformRequest with a bearer token.
func PerformRequestWithToken(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}

var anyCtx = mock.Anything
