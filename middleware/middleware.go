package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	requestTimeout time.Duration
	// keyed by echo route path, e.g. /nfts/list
	routeTimeouts map[string]time.Duration
}

// InitMiddleware initialize the middleware, requestTimeout <= 0 disables the deadline
func InitMiddleware(requestTimeout time.Duration) *GoMiddleware {
	return &GoMiddleware{
		requestTimeout: requestTimeout,
		routeTimeouts:  map[string]time.Duration{},
	}
}

// WithRouteTimeout replaces the request deadline of the given routes.
// Routes waiting for on-chain confirmations need far more than a read.
func (m *GoMiddleware) WithRouteTimeout(timeout time.Duration, paths ...string) *GoMiddleware {
	for _, p := range paths {
		m.routeTimeouts[p] = timeout
	}
	return m
}

func (m *GoMiddleware) timeoutOf(path string) time.Duration {
	if t, ok := m.routeTimeouts[path]; ok {
		return t
	}
	return m.requestTimeout
}

// AddContext attaches a base ctx carrying the request id to every request
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			parent := ctx.From(c.Request().Context())
			cont := ctx.WithFields(parent, log.Fields{"requestID": requestID})
			if timeout := m.timeoutOf(c.Path()); timeout > 0 {
				var cancel func()
				cont, cancel = ctx.WithTimeout(cont, timeout)
				defer cancel()
			}
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
			}
			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			logger := log.Log()
			if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
				logger = cont.Logger
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}
