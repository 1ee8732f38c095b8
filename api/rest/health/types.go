package health

import "context"

// Response represents the health check response
type Response struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// a dependency the health check can probe, e.g. the pgx pool
type Pinger interface {
	Ping(ctx context.Context) error
}
