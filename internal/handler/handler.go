package handler

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"nextgenmobiles/backend/internal/service"
)

// MaxRequestBytes caps every request body, uploads included.
const MaxRequestBytes = 16 << 20

type Handler struct {
	router    *chi.Mux
	staticDir string

	catalog  *service.CatalogService
	orders   *service.OrderService
	users    *service.UserService
	files    *service.FileService
	contacts *service.ContactService
}

func New(
	staticDir string,
	catalog *service.CatalogService,
	orders *service.OrderService,
	users *service.UserService,
	files *service.FileService,
	contacts *service.ContactService,
) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(recoverJSON)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestSize(MaxRequestBytes))

	compressor := middleware.NewCompressor(5,
		"application/json", "text/html", "text/css", "text/javascript", "application/javascript")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	router.Use(compressor.Handler)

	h := &Handler{
		router:    router,
		staticDir: staticDir,
		catalog:   catalog,
		orders:    orders,
		users:     users,
		files:     files,
		contacts:  contacts,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/", h.Index)

	h.router.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/search", h.SearchProducts)
		r.Get("/products/filter", h.FilterProducts)
		r.Get("/products/{id}", h.GetProduct)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/{id}", h.GetOrder)
		r.Delete("/orders/{id}", h.DeleteOrder)

		r.Get("/brands", h.GetBrands)
		r.Get("/stats", h.GetStats)

		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Put("/user/profile", h.UpdateProfile)
		r.Get("/user/profile/{id}", h.GetProfile)
		r.Get("/user/orders", h.GetUserOrders)
		r.Get("/user/files", h.GetUserFiles)

		r.Post("/upload", h.UploadFile)
		r.Post("/contact", h.SubmitContact)
	})

	h.router.NotFound(h.notFound)
	h.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorJSON(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Index serves the bundled storefront page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

// notFound falls through to co-located static assets for plain GETs and
// answers everything else with a JSON 404.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
	}
	errorJSON(w, http.StatusNotFound, "Not found")
}

// recoverJSON is the handler-boundary catch-all: any panic is logged and
// surfaced to the caller as a generic JSON server error.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				errorJSON(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
