package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/service/cache"
	"github.com/x-xyz/nftlister/service/cache/provider"
	"github.com/x-xyz/nftlister/service/cache/provider/compound"
	"github.com/x-xyz/nftlister/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/nftlister/service/cache/provider/redis"
	"github.com/x-xyz/nftlister/service/redis"
)

const (
	httpCachePfx = "httpCache"
	// megabytes
	httpCacheLocalSize = 64
)

// Response is the cached response data structure.
type Response struct {
	Value  []byte
	Header http.Header
}

// HttpCache caches successful GET responses keyed by their normalized url
type HttpCache struct {
	svc cache.Service
	met metrics.Service
}

// NewHttpCache builds a local layer, backed by redis when it is configured
func NewHttpCache(redis redis.Service, ttl time.Duration) *HttpCache {
	layers := []provider.Provider{primitive.NewPrimitive(httpCachePfx, httpCacheLocalSize)}
	if redis != nil {
		layers = append(layers, redisCache.NewRedis(redis))
	}
	return &HttpCache{
		svc: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   httpCachePfx,
			Cache: compound.NewCompound(layers),
		}),
		met: metrics.New("httpcache"),
	}
}

// Purge drops every cached response
func (h *HttpCache) Purge(c ctx.Ctx) error {
	return h.svc.Clear(c)
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(u *url.URL) {
	params := u.Query()
	for _, param := range params {
		sort.Strings(param)
	}
	u.RawQuery = params.Encode()
}

func generateKey(u string) string {
	hash := fnv.New64a()
	hash.Write([]byte(u))
	return strconv.FormatUint(hash.Sum64(), 36)
}

// Middleware serves hits from the cache and stores 2xx responses of GET requests
func (h *HttpCache) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			bCtx, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				bCtx = ctx.Background()
			}

			sortURLParams(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			response := Response{}
			if err := h.svc.Get(bCtx, key, &response); err == nil {
				h.met.BumpSum("hit", 1)
				for k, v := range response.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().WriteHeader(http.StatusOK)
				_, err := c.Response().Write(response.Value)
				return err
			} else if err != cache.ErrNotFound {
				bCtx.WithErr(err).Error("failed to get cached response")
			}
			h.met.BumpSum("miss", 1)

			resBody := new(bytes.Buffer)
			writer := &bodyDumpResponseWriter{
				Writer:         io.MultiWriter(c.Response().Writer, resBody),
				ResponseWriter: c.Response().Writer,
			}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode >= 200 && writer.statusCode < 300 {
				response := Response{
					Value:  resBody.Bytes(),
					Header: writer.Header(),
				}
				if err := h.svc.Set(bCtx, key, response); err != nil {
					bCtx.WithErr(err).Error("failed to cache response")
				}
			}
			return nil
		}
	}
}
