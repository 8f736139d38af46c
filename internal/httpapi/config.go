package httpapi

// maxBodyBytes caps the request body size on the JSON endpoints. 1 MiB is
// far beyond the engine's input length cap, so real requests never hit it.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes configures the request body cap; n <= 0 restores the default.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// translateTimeout controls the maximum duration a /translate request may run
// before timing out. Zero means no additional timeout beyond server/connection
// timeouts. A cold first request may download and convert a model, so keep
// this generous or disabled.
var translateTimeout = int64(0) // seconds

// SetTranslateTimeoutSeconds sets the translate timeout in seconds (0 disables).
func SetTranslateTimeoutSeconds(sec int64) {
	if sec < 0 {
		sec = 0
	}
	translateTimeout = sec
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}
