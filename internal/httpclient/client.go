package httpclient

import (
	"net/http"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"github.com/imroc/req/v3"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single probe request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is sent when no explicit value is configured.
var DefaultUserAgent = "avail/dev"

// Options configures the shared probe client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Logger    *logging.Logger
	Debug     bool
}

// SetVersion updates DefaultUserAgent with the build version.
func SetVersion(version string) {
	if version == "" {
		return
	}
	DefaultUserAgent = "avail/" + version
}

// New builds a *req.Client for availability probes.
//
// Proxy settings come from HTTP_PROXY / HTTPS_PROXY / NO_PROXY. When Debug is
// set and a logger is given, every response is logged at debug level.
func New(opts Options) *req.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := req.NewClient().
		SetTimeout(timeout).
		SetUserAgent(userAgent).
		SetProxy(http.ProxyFromEnvironment)

	if opts.Debug && opts.Logger != nil {
		attachDebugHook(client, opts.Logger)
	}

	return client
}

func attachDebugHook(client *req.Client, logger *logging.Logger) {
	client.OnAfterResponse(func(_ *req.Client, resp *req.Response) error {
		if resp.Response == nil || resp.Request == nil || resp.Request.RawRequest == nil {
			return nil
		}
		logger.Debug("Probe response",
			zap.String("method", resp.Request.RawRequest.Method),
			zap.String("url", resp.Request.RawRequest.URL.String()),
			zap.Int("status", resp.StatusCode),
		)
		return nil
	})
}
