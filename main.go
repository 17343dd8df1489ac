package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"Conecyl/internal/auth"
	"Conecyl/internal/ccs"
	"Conecyl/internal/config"
	"Conecyl/internal/export"
	"Conecyl/internal/geometry"
	"Conecyl/internal/mirror"
	"Conecyl/internal/repo"
	"Conecyl/internal/report"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// route registers h for methods and answers 405 for any other method on the
// same path.
func route(r *mux.Router, path string, h http.HandlerFunc, methods ...string) {
	r.HandleFunc(path, h).Methods(methods...)
	allow := strings.Join(methods, ", ")
	r.HandleFunc(path, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Allow", allow)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
}

// HandleList registers every route. specimenRepo may be nil.
func HandleList(mux *mux.Router, cat *ccs.Catalog, cfg config.Config, specimenRepo repo.Repository) {
	authEnv := &auth.Authenv{
		JWTkey:     []byte(cfg.TokenKey),
		AdminLogin: cfg.AdminLogin,
		AdminHash:  cfg.AdminHash,
	}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	specimenH := &ccs.Handler{Catalog: cat}
	geometryH := &geometry.Handler{Catalog: cat}
	reportH := &report.Handler{Catalog: cat}
	exportH := &export.Handler{Catalog: cat}
	mirrorH := &mirror.Handler{Repo: specimenRepo, Catalog: cat}

	route(api, "/specimens", specimenH.List, "GET")
	route(api, "/specimens/{name}", specimenH.Get, "GET")
	route(api, "/specimens/{name}/geometry", geometryH.Calc, "GET")
	route(api, "/specimens/{name}/report.pdf", reportH.Generate, "GET")
	route(api, "/geometry/batch", geometryH.Batch, "POST")
	route(api, "/export/specimens.xlsx", exportH.XLSX, "GET")
	route(api, "/export/specimens.csv", exportH.CSV, "GET")

	route(api, "/login", authEnv.LoginHandler, "POST")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authEnv.AuthMiddleware)
	route(admin, "/sync", mirrorH.Sync, "POST")
	route(admin, "/mirror", mirrorH.Names, "GET")
	route(admin, "/mirror/{name}", mirrorH.Get, "GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	cat := ccs.Default()
	log.Printf("Catalog loaded: %d specimens, %d in display list", cat.Len(), len(cat.DisplayList()))

	var specimenRepo repo.Repository
	if cfg.DatabaseURL != "" {
		db, err := repo.InitDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Database error: ", err)
		}
		defer db.Close()
		specimenRepo = repo.NewPostgresSpecimenDB(db)
	}

	mux := mux.NewRouter()
	HandleList(mux, cat, cfg, specimenRepo)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", cfg.Addr)
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
