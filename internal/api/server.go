package api

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"devapi/internal/domain"
	"devapi/internal/service/capability"
	"devapi/internal/service/dataset"
)

type Api struct {
	ctx       *domain.Context
	caps      *capability.Set
	data      *dataset.Dataset
	router    chi.Router
	startedAt time.Time

	// exit is swapped out in tests; /shutdown calls it directly.
	exit func(code int)
}

func Create(ctx *domain.Context, caps *capability.Set, data *dataset.Dataset) *Api {
	a := &Api{
		ctx:       ctx,
		caps:      caps,
		data:      data,
		startedAt: time.Now(),
		exit:      os.Exit,
	}

	r := chi.NewRouter()

	// The shell's webview may load from any origin, so CORS is wide open.
	// Local-machine trust only; the listener binds to loopback by default.
	r.Use(corsHandler)

	// Register Routes
	r.Get("/", a.handleRoot)
	r.Get("/health", a.handleHealth)
	r.Get("/info", a.handleInfo)
	r.Get("/test", a.handleTest)
	r.Get("/debug/imports", a.handleDebugImports)
	r.Get("/debug/routes", a.handleDebugRoutes)
	r.Get("/shutdown", a.handleShutdown)

	// WebSocket status stream for the spawning shell
	r.Get("/connect", a.handleConnect)

	a.router = r
	return a
}

// Router exposes the configured handler, mainly for tests.
func (a *Api) Router() http.Handler {
	return a.router
}

func (a *Api) Run() error {
	addr := net.JoinHostPort(a.ctx.Config.Host, strconv.Itoa(a.ctx.Config.Port))
	log.Printf("api: %s listening on %s", a.ctx.Config.APIName, addr)
	return http.ListenAndServe(addr, a.router)
}

// routes walks the live router so /info and /debug/routes can never drift
// from what is actually registered.
func (a *Api) routes() []domain.RouteView {
	var out []domain.RouteView
	_ = chi.Walk(a.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, domain.RouteView{Method: method, Path: route})
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

func (a *Api) endpoints() []string {
	var out []string
	seen := make(map[string]bool)
	for _, rt := range a.routes() {
		if !seen[rt.Path] {
			seen[rt.Path] = true
			out = append(out, rt.Path)
		}
	}
	return out
}

// corsHandler allows everything, including preflight against paths that are
// not registered routes.
func corsHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}
