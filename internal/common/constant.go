package common

const (
	// AuthorizationHeaderName carries the bearer token on HTTP requests and,
	// lowercased, in gRPC metadata.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme is the only accepted authorization scheme.
	BearerScheme = "Bearer"

	// RequestIDHeaderName is echoed back on every HTTP response.
	RequestIDHeaderName = "X-Request-ID"
)
