package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cheff-backend/internal/auth"
	"cheff-backend/internal/images"
	"cheff-backend/internal/storage/sqlite"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "cheff-api-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	imgStore, err := images.NewStore(filepath.Join(tempDir, "imagens"))
	if err != nil {
		t.Fatalf("Failed to create image store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	server := httptest.NewServer(NewServer(store, authenticator, jwtManager, imgStore).Router())
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func getJSON(t *testing.T, url, token string, dst any) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if dst != nil && resp.StatusCode == http.StatusOK {
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func registerAndLogin(t *testing.T, baseURL, name, password string) (int64, string) {
	t.Helper()

	resp := postJSON(t, baseURL+"/register", "", map[string]string{"nome": name, "senha": password})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: got status %d, want 201", resp.StatusCode)
	}
	var reg struct {
		UserID int64 `json:"userId"`
	}
	decodeBody(t, resp, &reg)

	resp = postJSON(t, baseURL+"/login", "", map[string]string{"nome": name, "senha": password})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: got status %d, want 200", resp.StatusCode)
	}
	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)

	return reg.UserID, login.Token
}

func createRecipe(t *testing.T, baseURL, token, title, ingredientsJSON string, image []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"titulo":       title,
		"dificuldade":  "fácil",
		"tempoPreparo": "30 min",
		"porcoes":      "4",
		"utensilios":   "tigela",
		"modoPreparo":  "Misture tudo.",
		"ingredientes": ingredientsJSON,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField failed: %v", err)
		}
	}
	if image != nil {
		part, err := w.CreateFormFile("imagem", "foto.png")
		if err != nil {
			t.Fatalf("CreateFormFile failed: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("Write image failed: %v", err)
		}
	}
	w.Close()

	req, err := http.NewRequest(http.MethodPost, baseURL+"/cadastrar-receita", &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("create recipe: got status %d, body %s", resp.StatusCode, body)
	}
}

type recipeResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Image       string `json:"imagem"`
	Ingredients []struct {
		ID       int64  `json:"id"`
		Name     string `json:"nome"`
		Quantity string `json:"quantidade"`
	} `json:"ingredientes"`
}

func TestRegisterValidation(t *testing.T) {
	server := setupTestServer(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing senha", map[string]string{"nome": "ana"}},
		{"missing nome", map[string]string{"senha": "pw1"}},
		{"both empty", map[string]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/register", "", tc.body)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("Got status %d, want 400", resp.StatusCode)
			}
		})
	}

	t.Run("rejected registration creates no user", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/login", "", map[string]string{"nome": "ana", "senha": "pw1"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Got status %d, want 401", resp.StatusCode)
		}
	})
}

func TestLogin(t *testing.T) {
	server := setupTestServer(t)
	registerAndLogin(t, server.URL, "ana", "pw1")

	t.Run("wrong password is rejected", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/login", "", map[string]string{"nome": "ana", "senha": "errada"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Got status %d, want 401", resp.StatusCode)
		}
	})

	t.Run("missing field is rejected", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/login", "", map[string]string{"nome": "ana"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Got status %d, want 400", resp.StatusCode)
		}
	})
}

func TestAuthGate(t *testing.T) {
	server := setupTestServer(t)

	t.Run("missing token yields 401", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/receitas", "", nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Got status %d, want 401", resp.StatusCode)
		}
	})

	t.Run("invalid token yields 403", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/receitas", "garbage", nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("Got status %d, want 403", resp.StatusCode)
		}
	})

	t.Run("expired token yields 403", func(t *testing.T) {
		expired := auth.NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(1)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		resp := getJSON(t, server.URL+"/receitas", token, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("Got status %d, want 403", resp.StatusCode)
		}
	})
}

func TestRecipeFlow(t *testing.T) {
	server := setupTestServer(t)
	_, token := registerAndLogin(t, server.URL, "ana", "pw1")

	imageBytes := []byte("fake png bytes")
	createRecipe(t, server.URL, token,
		"Bolo", `[{"nome":"farinha","quantidade":"2 cups"}]`, imageBytes)
	createRecipe(t, server.URL, token,
		"Feijoada", `[{"nome":"feijão","quantidade":"500g"},{"nome":"linguiça","quantidade":"300g"}]`, nil)

	t.Run("list returns all recipes with nested ingredients", func(t *testing.T) {
		var recipes []recipeResponse
		resp := getJSON(t, server.URL+"/receitas", token, &recipes)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Got status %d, want 200", resp.StatusCode)
		}
		if len(recipes) != 2 {
			t.Fatalf("Expected 2 recipes, got %d", len(recipes))
		}
		if recipes[0].Title != "Bolo" {
			t.Errorf("Got title %q, want Bolo", recipes[0].Title)
		}
		if len(recipes[0].Ingredients) != 1 {
			t.Fatalf("Expected 1 ingredient, got %d", len(recipes[0].Ingredients))
		}
		ing := recipes[0].Ingredients[0]
		if ing.Name != "farinha" || ing.Quantity != "2 cups" {
			t.Errorf("Unexpected ingredient: %+v", ing)
		}
		if len(recipes[1].Ingredients) != 2 {
			t.Errorf("Expected 2 ingredients on Feijoada, got %d", len(recipes[1].Ingredients))
		}
	})

	t.Run("search filters by title", func(t *testing.T) {
		var recipes []recipeResponse
		resp := getJSON(t, server.URL+"/receitas?search=Bolo", token, &recipes)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Got status %d, want 200", resp.StatusCode)
		}
		if len(recipes) != 1 || recipes[0].Title != "Bolo" {
			t.Errorf("Expected only Bolo, got %+v", recipes)
		}
	})

	t.Run("uploaded image is served back", func(t *testing.T) {
		var recipes []recipeResponse
		getJSON(t, server.URL+"/receitas?search=Bolo", token, &recipes)
		if len(recipes) != 1 || recipes[0].Image == "" {
			t.Fatalf("Expected Bolo to carry an image filename, got %+v", recipes)
		}

		resp, err := http.Get(server.URL + "/imagens/" + recipes[0].Image)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Got status %d, want 200", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !bytes.Equal(body, imageBytes) {
			t.Error("Served image does not match upload")
		}
	})

	t.Run("malformed ingredient payload yields 400", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		w.WriteField("titulo", "Quebrada")
		w.WriteField("ingredientes", "not-json")
		w.Close()

		req, _ := http.NewRequest(http.MethodPost, server.URL+"/cadastrar-receita", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Got status %d, want 400", resp.StatusCode)
		}
	})
}

func TestShoppingListFlow(t *testing.T) {
	server := setupTestServer(t)
	_, token := registerAndLogin(t, server.URL, "bia", "pw2")

	createRecipe(t, server.URL, token,
		"Vitamina", `[{"nome":"banana","quantidade":"2"}]`, nil)

	var recipes []recipeResponse
	getJSON(t, server.URL+"/receitas", token, &recipes)
	if len(recipes) != 1 || len(recipes[0].Ingredients) != 1 {
		t.Fatalf("Unexpected recipes: %+v", recipes)
	}
	bananaID := recipes[0].Ingredients[0].ID

	t.Run("fresh list is empty despite the placeholder row", func(t *testing.T) {
		var items []map[string]string
		resp := getJSON(t, server.URL+"/lista", token, &items)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Got status %d, want 200", resp.StatusCode)
		}
		if len(items) != 0 {
			t.Errorf("Expected empty list, got %+v", items)
		}
	})

	t.Run("adds append without dedup", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp := postJSON(t, server.URL+"/adicionar-ingrediente", token,
				map[string]int64{"ingredienteId": bananaID})
			resp.Body.Close()
			if resp.StatusCode != http.StatusCreated {
				t.Fatalf("Got status %d, want 201", resp.StatusCode)
			}
		}

		var items []map[string]string
		getJSON(t, server.URL+"/lista", token, &items)
		if len(items) != 2 {
			t.Fatalf("Expected 2 items, got %d", len(items))
		}
		for _, item := range items {
			if item["nome"] != "banana" || item["quantidade"] != "2" {
				t.Errorf("Unexpected item: %+v", item)
			}
		}
	})
}

func TestMealPlanFlow(t *testing.T) {
	server := setupTestServer(t)
	_, token := registerAndLogin(t, server.URL, "caio", "pw3")

	createRecipe(t, server.URL, token, "Sopa", `[]`, nil)
	createRecipe(t, server.URL, token, "Salada", `[]`, nil)

	var recipes []recipeResponse
	getJSON(t, server.URL+"/receitas", token, &recipes)
	if len(recipes) != 2 {
		t.Fatalf("Expected 2 recipes, got %d", len(recipes))
	}

	// Schedule out of order; listing must come back date-ascending.
	add := func(recipeID int64, date string) {
		resp := postJSON(t, server.URL+"/adicionar-planejamento", token,
			map[string]any{"receitaId": recipeID, "data": date})
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("Got status %d, want 201", resp.StatusCode)
		}
	}
	add(recipes[1].ID, "2026-09-05")
	add(recipes[0].ID, "2026-09-01")

	var entries []map[string]string
	resp := getJSON(t, server.URL+"/planejamento", token, &entries)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Got status %d, want 200", resp.StatusCode)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0]["data"] != "2026-09-01" || entries[0]["titulo"] != "Sopa" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1]["data"] != "2026-09-05" || entries[1]["titulo"] != "Salada" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestEndToEnd(t *testing.T) {
	server := setupTestServer(t)

	userID, token := registerAndLogin(t, server.URL, "ana", "pw1")
	if userID == 0 {
		t.Fatal("Expected a user id from registration")
	}

	createRecipe(t, server.URL, token,
		"Bolo", `[{"nome":"farinha","quantidade":"2 cups"}]`, nil)

	var recipes []recipeResponse
	resp := getJSON(t, server.URL+"/receitas", token, &recipes)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Got status %d, want 200", resp.StatusCode)
	}
	if len(recipes) != 1 {
		t.Fatalf("Expected 1 recipe, got %d", len(recipes))
	}
	if recipes[0].Title != "Bolo" {
		t.Errorf("Got title %q, want Bolo", recipes[0].Title)
	}
	if len(recipes[0].Ingredients) != 1 {
		t.Fatalf("Expected 1 ingredient, got %d", len(recipes[0].Ingredients))
	}
	if got := recipes[0].Ingredients[0]; got.Name != "farinha" || got.Quantity != "2 cups" {
		t.Errorf("Unexpected ingredient: %+v", got)
	}
}
