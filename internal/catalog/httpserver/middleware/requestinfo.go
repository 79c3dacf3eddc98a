package middleware

import (
	"context"
	"net/http"
	"strings"

	"finitefield.org/product-table/internal/platform/config"
)

const defaultEnvironment = "Development"

type requestInfoKey struct{}

// RequestInfo is the per-request view of where the catalogue is mounted and
// which deployment is serving it.
type RequestInfo struct {
	Path        string
	Method      string
	BasePath    string
	Environment string
}

// RequestInfoMiddleware records the normalised base path and environment label
// on the request context. An empty environment becomes "Development".
func RequestInfoMiddleware(basePath, environment string) func(http.Handler) http.Handler {
	base := config.NormalizeBasePath(basePath)
	env := strings.TrimSpace(environment)
	if env == "" {
		env = defaultEnvironment
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := RequestInfo{
				Path:        r.URL.Path,
				Method:      r.Method,
				BasePath:    base,
				Environment: env,
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info)))
		})
	}
}

// RequestInfoFromContext returns the metadata stored by RequestInfoMiddleware.
func RequestInfoFromContext(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

// BasePathFromContext returns the resolved base path or "/".
func BasePathFromContext(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok && info.BasePath != "" {
		return info.BasePath
	}
	return "/"
}

// EnvironmentFromContext returns the environment label or "Development".
func EnvironmentFromContext(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok && info.Environment != "" {
		return info.Environment
	}
	return defaultEnvironment
}
