package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

const (
	cookieName  = "recipe_token"
	defaultPort = "3000"
	defaultAPI  = "http://localhost:8080"
	envWebPort  = "RECIPE_WEB_PORT"
	envAPIURL   = "RECIPE_API_URL"
)

// session is the explicit per-request auth state handed to every view.
// It is derived from the token cookie on each navigation, so there is no
// process-wide auth flag and no background refresh.
type session struct {
	Token    string
	LoggedIn bool
}

func sessionFrom(r *http.Request) session {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return session{}
	}
	return session{Token: c.Value, LoggedIn: true}
}

func main() {
	port := getEnv(envWebPort, defaultPort)
	apiBase := getEnv(envAPIURL, defaultAPI)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health (no auth, no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Public views
	r.Get("/", home(apiBase))
	r.Get("/recipes/{id}", recipeDetail(apiBase))
	r.Get("/login", loginForm)
	r.Post("/login", loginSubmit(apiBase))
	r.Get("/register", registerForm)
	r.Post("/register", registerSubmit(apiBase))
	r.Get("/logout", logout)

	// Protected: recipe creation needs a session
	r.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Get("/recipes/new", recipeCreateForm)
		r.Post("/recipes", recipeCreate(apiBase))
	})

	log.Printf("Web UI running on http://localhost:%s (API: %s)", port, apiBase)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// requireSession redirects to /login when no token cookie is present. The
// token itself is verified by the API on the protected call; an API 401
// clears the cookie and sends the user back to login.
func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := sessionFrom(r); !sess.LoggedIn {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clearSessionAndRedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
}

// apiGet performs GET against the API.
func apiGet(apiBase, path string) ([]byte, int, error) {
	resp, err := http.Get(apiBase + path)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return data, resp.StatusCode, nil
}

// apiPost performs POST with a JSON body; token may be empty for public calls.
func apiPost(apiBase, path, token string, body []byte) ([]byte, int, error) {
	req, _ := http.NewRequest("POST", apiBase+path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return data, resp.StatusCode, nil
}

// apiError extracts the "error" field from an API response body.
func apiError(data []byte) string {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &out); err == nil && out.Error != "" {
		return out.Error
	}
	msg := string(data)
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}

type recipeView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	UserID       string   `json:"userId"`
}

// ==========================
// Home (list)
// ==========================
func home(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		data, status, err := apiGet(apiBase, "/recipes")
		if err != nil {
			renderTemplate(w, "home.html", map[string]interface{}{"Session": sess, "Error": "Cannot reach API: " + err.Error()})
			return
		}
		if status != http.StatusOK {
			renderTemplate(w, "home.html", map[string]interface{}{"Session": sess, "Error": "API error: " + apiError(data)})
			return
		}

		var recipes []recipeView
		if err := json.Unmarshal(data, &recipes); err != nil {
			renderTemplate(w, "home.html", map[string]interface{}{"Session": sess, "Error": "Invalid recipes response"})
			return
		}

		renderTemplate(w, "home.html", map[string]interface{}{
			"Session": sess,
			"Recipes": recipes,
		})
	}
}

// ==========================
// Detail
// ==========================
func recipeDetail(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		id := chi.URLParam(r, "id")

		data, status, err := apiGet(apiBase, "/recipes/"+url.PathEscape(id))
		if err != nil {
			renderTemplate(w, "recipe_detail.html", map[string]interface{}{"Session": sess, "Error": "Cannot reach API: " + err.Error()})
			return
		}
		if status == http.StatusNotFound {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			renderTemplate(w, "recipe_detail.html", map[string]interface{}{"Session": sess, "Error": "Recipe not found"})
			return
		}
		if status != http.StatusOK {
			renderTemplate(w, "recipe_detail.html", map[string]interface{}{"Session": sess, "Error": "API error: " + apiError(data)})
			return
		}

		var recipe recipeView
		if err := json.Unmarshal(data, &recipe); err != nil {
			renderTemplate(w, "recipe_detail.html", map[string]interface{}{"Session": sess, "Error": "Invalid recipe response"})
			return
		}

		renderTemplate(w, "recipe_detail.html", map[string]interface{}{
			"Session": sess,
			"Recipe":  recipe,
		})
	}
}

// ==========================
// Create
// ==========================
func recipeCreateForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "recipe_new.html", map[string]interface{}{
		"Session": sessionFrom(r), "Title": "", "Ingredients": "", "Instructions": "",
	})
}

func recipeCreate(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		title := strings.TrimSpace(r.FormValue("title"))
		ingredients := splitIngredients(r.FormValue("ingredients"))
		instructions := strings.TrimSpace(r.FormValue("instructions"))

		formData := map[string]interface{}{
			"Session":      sess,
			"Title":        title,
			"Ingredients":  r.FormValue("ingredients"),
			"Instructions": instructions,
		}

		if title == "" || len(ingredients) == 0 || instructions == "" {
			formData["Error"] = "Title, ingredients and instructions are all required"
			renderTemplate(w, "recipe_new.html", formData)
			return
		}

		body, _ := json.Marshal(map[string]interface{}{
			"title":        title,
			"ingredients":  ingredients,
			"instructions": instructions,
		})

		data, status, err := apiPost(apiBase, "/recipes", sess.Token, body)
		if err != nil {
			formData["Error"] = "Cannot reach API: " + err.Error()
			renderTemplate(w, "recipe_new.html", formData)
			return
		}
		if status == http.StatusUnauthorized {
			clearSessionAndRedirectToLogin(w, r)
			return
		}
		if status != http.StatusCreated {
			formData["Error"] = "API error: " + apiError(data)
			renderTemplate(w, "recipe_new.html", formData)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// splitIngredients turns the comma-separated form field into a trimmed list.
func splitIngredients(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ==========================
// Login / Register / Logout
// ==========================
func loginForm(w http.ResponseWriter, r *http.Request) {
	if sessionFrom(r).LoggedIn {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	renderTemplate(w, "login.html", map[string]interface{}{"Session": session{}, "Email": ""})
}

func loginSubmit(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")
		if email == "" || password == "" {
			renderTemplate(w, "login.html", map[string]interface{}{"Session": session{}, "Error": "Email and password are required", "Email": email})
			return
		}

		body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
		data, status, err := apiPost(apiBase, "/auth/login", "", []byte(body))
		if err != nil {
			renderTemplate(w, "login.html", map[string]interface{}{"Session": session{}, "Error": "Cannot reach API: " + err.Error(), "Email": email})
			return
		}
		if status != http.StatusOK {
			renderTemplate(w, "login.html", map[string]interface{}{"Session": session{}, "Error": apiError(data), "Email": email})
			return
		}

		var out struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(data, &out); err != nil || out.Token == "" {
			renderTemplate(w, "login.html", map[string]interface{}{"Session": session{}, "Error": "Invalid login response", "Email": email})
			return
		}

		next := r.URL.Query().Get("next")
		if next == "" || !strings.HasPrefix(next, "/") {
			next = "/"
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    out.Token,
			Path:     "/",
			MaxAge:   24 * 3600,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, next, http.StatusFound)
	}
}

func registerForm(w http.ResponseWriter, r *http.Request) {
	if sessionFrom(r).LoggedIn {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	renderTemplate(w, "register.html", map[string]interface{}{"Session": session{}, "Username": "", "Email": ""})
}

func registerSubmit(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		username := strings.TrimSpace(r.FormValue("username"))
		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")

		formData := map[string]interface{}{"Session": session{}, "Username": username, "Email": email}

		if username == "" || email == "" || password == "" {
			formData["Error"] = "Username, email and password are all required"
			renderTemplate(w, "register.html", formData)
			return
		}

		body, _ := json.Marshal(map[string]string{
			"username": username,
			"email":    email,
			"password": password,
		})
		data, status, err := apiPost(apiBase, "/auth/register", "", body)
		if err != nil {
			formData["Error"] = "Cannot reach API: " + err.Error()
			renderTemplate(w, "register.html", formData)
			return
		}
		if status != http.StatusCreated {
			formData["Error"] = apiError(data)
			renderTemplate(w, "register.html", formData)
			return
		}

		http.Redirect(w, r, "/login", http.StatusFound)
	}
}

func logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/", http.StatusFound)
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	layout, _ := templatesFS.ReadFile("templates/layout.html")
	t := template.Must(template.New("").Parse(string(layout)))
	t = template.Must(t.New("").Parse(string(content)))
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template execute: %v", err)
	}
}
