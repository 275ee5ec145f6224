package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfchef/backend/internal/domain"
)

const searchFixture = `{
	"meals": [
		{
			"idMeal": "52940",
			"strMeal": "Brown Stew Chicken",
			"strCategory": "Chicken",
			"strArea": "Jamaican",
			"strIngredient1": "Chicken",
			"strMeasure1": "1 whole",
			"strIngredient2": "Tomato",
			"strMeasure2": "1 chopped",
			"strIngredient3": "",
			"strMeasure3": ""
		}
	]
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, "1"), server
}

func TestClient_SearchRecipes(t *testing.T) {
	t.Run("decodes matching meals", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/json/v1/1/search.php", r.URL.Path)
			assert.Equal(t, "chicken", r.URL.Query().Get("s"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(searchFixture))
		})
		defer server.Close()

		recipes, err := client.SearchRecipes(context.Background(), "chicken")
		require.NoError(t, err)
		require.Len(t, recipes, 1)

		assert.Equal(t, "52940", recipes[0].ID)
		assert.Equal(t, "Brown Stew Chicken", recipes[0].Name)
		assert.Equal(t, "Chicken", recipes[0].Category)
		require.Len(t, recipes[0].Ingredients, 2)
		assert.Equal(t, "Chicken", recipes[0].Ingredients[0].Name)
		assert.Equal(t, "1 whole", recipes[0].Ingredients[0].Measure)
	})

	t.Run("null meals means no hits, not an error", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"meals": null}`))
		})
		defer server.Close()

		recipes, err := client.SearchRecipes(context.Background(), "xyzzy")
		require.NoError(t, err)
		assert.Empty(t, recipes)
	})

	t.Run("server error maps to catalog failure", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer server.Close()

		_, err := client.SearchRecipes(context.Background(), "chicken")
		assert.ErrorIs(t, err, domain.ErrCatalogFailure)
	})
}

func TestClient_GetRecipe(t *testing.T) {
	t.Run("returns the looked-up recipe", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/json/v1/1/lookup.php", r.URL.Path)
			assert.Equal(t, "52940", r.URL.Query().Get("i"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(searchFixture))
		})
		defer server.Close()

		recipe, err := client.GetRecipe(context.Background(), "52940")
		require.NoError(t, err)
		assert.Equal(t, "Brown Stew Chicken", recipe.Name)
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"meals": null}`))
		})
		defer server.Close()

		_, err := client.GetRecipe(context.Background(), "99999")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestClient_RandomRecipe(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/json/v1/1/random.php", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	})
	defer server.Close()

	recipe, err := client.RandomRecipe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "52940", recipe.ID)
}

func TestClient_ContextCancellation(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meals": null}`))
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SearchRecipes(ctx, "chicken")
	assert.Error(t, err)
}
