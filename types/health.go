package types

// HealthStatus is the state of the service or one of its components.
type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
	// HealthStatusDegraded means the server answers but cannot deliver
	// contact messages, e.g. no provider credential is set.
	HealthStatusDegraded HealthStatus = "DEGRADED"
)

// HealthComponent reports one dependency, currently only the email provider.
type HealthComponent struct {
	Status  HealthStatus `json:"status"`
	Details string       `json:"details,omitempty"`
}

// HealthCheck is the body of GET /health and GET /health/readiness.
type HealthCheck struct {
	Status     HealthStatus               `json:"status"`
	Components map[string]HealthComponent `json:"components"`
	Version    string                     `json:"version"`
	Timestamp  string                     `json:"timestamp"`
	Uptime     string                     `json:"uptime"`
}
