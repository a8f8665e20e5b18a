package domain

// Constants
const (
	DefaultAPIName = "My API"
	DefaultHost    = "127.0.0.1"
	DefaultPort    = 8000
)

// JSON Output Structures

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	APIName string `json:"api_name"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	APIName          string `json:"api_name"`
	Message          string `json:"message"`
	NumericAvailable bool   `json:"numeric_available"`
	RecordsAvailable bool   `json:"records_available"`
}

type InfoResponse struct {
	APIName          string   `json:"api_name"`
	Version          string   `json:"version"`
	NumericAvailable bool     `json:"numeric_available"`
	RecordsAvailable bool     `json:"records_available"`
	Endpoints        []string `json:"endpoints"`
}

type TestResponse struct {
	Status       string      `json:"status"`
	APIName      string      `json:"api_name"`
	DataType     string      `json:"data_type"`
	Data         interface{} `json:"data"`
	Message      string      `json:"message"`
	ErrorDetails string      `json:"error_details,omitempty"`
}

// Record is one row of the tabular sample transform.
type Record struct {
	ID    int `json:"id"`
	Value int `json:"value"`
}

type CapabilityView struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ImportsResponse struct {
	APIName      string                    `json:"api_name"`
	Capabilities map[string]CapabilityView `json:"capabilities"`
	GoVersion    string                    `json:"go_version"`
	Executable   string                    `json:"executable"`
}

type RouteView struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type RoutesResponse struct {
	APIName     string      `json:"api_name"`
	TotalRoutes int         `json:"total_routes"`
	Routes      []RouteView `json:"routes"`
}

// StatusFrame is pushed over the /connect websocket stream.
type StatusFrame struct {
	APIName          string `json:"api_name"`
	Status           string `json:"status"`
	UptimeSec        int64  `json:"uptime_sec"`
	NumericAvailable bool   `json:"numeric_available"`
	RecordsAvailable bool   `json:"records_available"`
	DatasetSize      int    `json:"dataset_size"`
}
