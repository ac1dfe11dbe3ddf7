// Package httpapi — необязательная HTTP-поверхность: MCP по streamable HTTP,
// проверка живости и метрики Prometheus.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// OBSStatus — то, что /healthz сообщает о соединении с OBS.
type OBSStatus interface {
	URL() string
	Authenticated() bool
}

type Options struct {
	Server   *mcp.Server
	OBS      OBSStatus
	Gatherer prometheus.Gatherer // nil — /metrics не монтируется
	Logger   *zap.Logger
}

const requestIDHeader = "X-Request-ID"

func NewRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("http")

	r := gin.New()
	r.Use(requestID(), accessLog(log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		body := gin.H{"status": "ok", "obs_connected": false, "obs_url": ""}
		if opts.OBS != nil {
			body["obs_connected"] = opts.OBS.Authenticated()
			body["obs_url"] = opts.OBS.URL()
		}
		c.JSON(http.StatusOK, body)
	})

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	if opts.Server != nil {
		srv := opts.Server
		h := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return srv }, nil)
		r.Any("/mcp", gin.WrapH(h))
	}
	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("http request", fields...)
		case status >= 400:
			log.Warn("http request", fields...)
		default:
			log.Debug("http request", fields...)
		}
	}
}
