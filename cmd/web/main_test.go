package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestSplitIngredients(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"water, salt", []string{"water", "salt"}},
		{"water,salt,", []string{"water", "salt"}},
		{"  2 cups flour , 1 cup sugar ", []string{"2 cups flour", "1 cup sugar"}},
		{"", nil},
		{" , , ", nil},
	}
	for _, tc := range cases {
		got := splitIngredients(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("splitIngredients(%q): got %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("splitIngredients(%q)[%d]: got %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestHome_RendersRecipes(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]recipeView{
			{ID: "64f1b2a3c4d5e6f708091a0b", Title: "Soup", Ingredients: []string{"water", "salt"}},
		})
	}))
	defer api.Close()

	rr := httptest.NewRecorder()
	home(api.URL)(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Soup") || !strings.Contains(body, "/recipes/64f1b2a3c4d5e6f708091a0b") {
		t.Errorf("expected recipe link in output, got: %s", body)
	}
}

func TestRecipeCreate_SendsBearerAndRedirects(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Title       string   `json:"title"`
		Ingredients []string `json:"ingredients"`
	}
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "x"})
	}))
	defer api.Close()

	form := url.Values{
		"title":        {"Soup"},
		"ingredients":  {"water, salt"},
		"instructions": {"Boil."},
	}
	req := httptest.NewRequest("POST", "/recipes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "tok123"})
	rr := httptest.NewRecorder()
	recipeCreate(api.URL)(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status: got %d, want 302", rr.Code)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization: got %q, want bearer from cookie", gotAuth)
	}
	if gotBody.Title != "Soup" || len(gotBody.Ingredients) != 2 {
		t.Errorf("unexpected API payload: %+v", gotBody)
	}
}

func TestRecipeCreate_UnauthorizedClearsSession(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer api.Close()

	form := url.Values{
		"title":        {"Soup"},
		"ingredients":  {"water"},
		"instructions": {"Boil."},
	}
	req := httptest.NewRequest("POST", "/recipes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "stale"})
	rr := httptest.NewRecorder()
	recipeCreate(api.URL)(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status: got %d, want 302", rr.Code)
	}
	loc := rr.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login") {
		t.Errorf("redirect: got %q, want /login", loc)
	}
	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie to be cleared")
	}
}
