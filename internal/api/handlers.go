package api

import (
	"log"
	"net/http"
	"os"
	"runtime"

	"devapi/internal/domain"
)

func (a *Api) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.RootResponse{
		Status:  "ok",
		Message: "API is running",
		APIName: a.ctx.Config.APIName,
	})
}

func (a *Api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.HealthResponse{
		Status:           "healthy",
		APIName:          a.ctx.Config.APIName,
		Message:          "service is up",
		NumericAvailable: a.caps.Available("numeric"),
		RecordsAvailable: a.caps.Available("records"),
	})
}

func (a *Api) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.InfoResponse{
		APIName:          a.ctx.Config.APIName,
		Version:          a.ctx.Config.Version,
		NumericAvailable: a.caps.Available("numeric"),
		RecordsAvailable: a.caps.Available("records"),
		Endpoints:        a.endpoints(),
	})
}

func (a *Api) handleTest(w http.ResponseWriter, r *http.Request) {
	resp := domain.TestResponse{
		Status:  "ok",
		APIName: a.ctx.Config.APIName,
	}

	provider, ok := a.caps.Pick()
	if !ok {
		resp.DataType = "error"
		resp.Data = map[string]string{"error": "no optional data capability available"}
		resp.Message = "enable the numeric or records capability to transform sample data"
		writeJSON(w, http.StatusOK, resp)
		return
	}

	seq := a.data.Sequence()
	data, msg, err := provider.Transform(seq)
	if err != nil {
		// Transform failures stay inside a normal 200 response; the body
		// carries the diagnostics.
		log.Printf("api: %s transform failed: %v", provider.Name(), err)
		resp.DataType = "error"
		resp.Data = map[string]string{"error": "transform failed"}
		resp.Message = "sample data transform failed"
		resp.ErrorDetails = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.DataType = provider.Name()
	resp.Data = data
	resp.Message = msg
	writeJSON(w, http.StatusOK, resp)
}

func (a *Api) handleDebugImports(w http.ResponseWriter, r *http.Request) {
	views := make(map[string]domain.CapabilityView)
	for _, c := range a.caps.All() {
		v := domain.CapabilityView{Available: c.Available}
		if c.Available {
			v.Version = c.Provider.Version()
		} else if c.Err != nil {
			v.Error = c.Err.Error()
		}
		views[c.Provider.Name()] = v
	}

	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	writeJSON(w, http.StatusOK, domain.ImportsResponse{
		APIName:      a.ctx.Config.APIName,
		Capabilities: views,
		GoVersion:    runtime.Version(),
		Executable:   exe,
	})
}

func (a *Api) handleDebugRoutes(w http.ResponseWriter, r *http.Request) {
	routes := a.routes()
	writeJSON(w, http.StatusOK, domain.RoutesResponse{
		APIName:     a.ctx.Config.APIName,
		TotalRoutes: len(routes),
		Routes:      routes,
	})
}

// handleShutdown terminates the process immediately. No body is written and
// the caller's connection simply drops; callers are documented to expect
// that.
func (a *Api) handleShutdown(w http.ResponseWriter, r *http.Request) {
	log.Printf("api: shutdown requested by %s", r.RemoteAddr)
	a.exit(0)
}
