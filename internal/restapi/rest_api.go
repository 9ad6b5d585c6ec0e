package restapi

import (
	"net/http"
	"time"

	"dashboard.nigeriaindicators.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Shutdown stops the rate limiter's cleanup goroutine.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}

func (api *RestAPI) observeView(view string) {
	if api.Metrics != nil {
		api.Metrics.ObserveView(view)
	}
}

// chain wraps handler in the shared middleware stack, outermost first:
// security headers, request logging, metrics, rate limiting, compression.
func (api *RestAPI) chain(route, contentSecurityPolicy string, handler http.Handler) http.Handler {
	handler = CompressionMiddleware(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	if api.Metrics != nil {
		handler = api.Metrics.Middleware(route, handler)
	}
	if api.Logger != nil {
		handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	}
	return newSecurityHeaders(contentSecurityPolicy)(handler)
}

// WithMiddleware wraps a JSON endpoint registered under route.
func (api *RestAPI) WithMiddleware(route string, handler http.Handler) http.Handler {
	return api.chain(route, APIContentSecurityPolicy, handler)
}

// WithPageMiddleware wraps an HTML or SVG endpoint; its policy lets pages
// load same-origin images and inline styles.
func (api *RestAPI) WithPageMiddleware(route string, handler http.Handler) http.Handler {
	return api.chain(route, PageContentSecurityPolicy, handler)
}
