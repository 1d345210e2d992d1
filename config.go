package teamsd

import "time"

/*
config sets up shared values for the client, the ui-api gateway and the cli:
- common constants - e.g the default backend location and server timeouts
- common maps - used to list valid values for certain fields e.g users.status
*/

const (
	DefaultAPIBaseURL = "http://localhost:8080"

	// Operational timeouts
	ServerShutdownTimeout  = 10 * time.Second // Server graceful shutdown timeout
	GatewayRequestTimeout  = 60 * time.Second // chi Timeout middleware
	DefaultMaxRequestBytes = 64 * 1024        // 64KB

	// CORS settings
	CORSMaxAgeInSeconds = 86400 // 24 hours

	RequestIDHeader = "X-Request-ID"
)

// user status values set by the backend
const (
	UserStatusPending = "PENDING" // created but has not logged in yet
	UserStatusJoined  = "JOINED"
)

// common maps - used to validate enum values

var ValidEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"perf":    true,
	"prod":    true,
	"staging": true,
}

var ValidUserStatuses = map[string]bool{ // users.status
	UserStatusPending: true,
	UserStatusJoined:  true,
}
