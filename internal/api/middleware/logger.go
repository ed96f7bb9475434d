package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestBodyLogSkipper returns true for bodies that must never be logged.
// Key material is sent in plain JSON to the key routes.
type RequestBodyLogSkipper func(req *http.Request) bool

// DefaultRequestBodyLogSkipper skips every route that carries secrets.
func DefaultRequestBodyLogSkipper(req *http.Request) bool {
	switch req.URL.Path {
	case "/init_with_entropy",
		"/derive_xpub_from_mnemonic",
		"/create_deterministic_nonce":
		return true
	default:
		return false
	}
}

// ResponseBodyLogSkipper returns true for responses that must never be logged.
type ResponseBodyLogSkipper func(req *http.Request, res *echo.Response) bool

// DefaultResponseBodyLogSkipper skips responses carrying nonce secrets.
func DefaultResponseBodyLogSkipper(req *http.Request, _ *echo.Response) bool {
	return req.URL.Path == "/create_deterministic_nonce"
}

type LoggerConfig struct {
	Skipper                middleware.Skipper
	Level                  zerolog.Level
	LogRequestBody         bool
	LogRequestHeader       bool
	LogRequestQuery        bool
	RequestBodyLogSkipper  RequestBodyLogSkipper
	LogResponseBody        bool
	LogResponseHeader      bool
	ResponseBodyLogSkipper ResponseBodyLogSkipper
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper:                middleware.DefaultSkipper,
	Level:                  zerolog.DebugLevel,
	LogRequestQuery:        true,
	RequestBodyLogSkipper:  DefaultRequestBodyLogSkipper,
	ResponseBodyLogSkipper: DefaultResponseBodyLogSkipper,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a request scoped zerolog instance to the request
// context and logs every request once it completed.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}
	if config.RequestBodyLogSkipper == nil {
		config.RequestBodyLogSkipper = DefaultRequestBodyLogSkipper
	}
	if config.ResponseBodyLogSkipper == nil {
		config.ResponseBodyLogSkipper = DefaultResponseBodyLogSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			in := log.With().
				Str("id", id).
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.Path).
				Str("ip", c.RealIP())

			if config.LogRequestQuery {
				in = in.Str("query", req.URL.RawQuery)
			}

			if config.LogRequestHeader {
				header := zerolog.Dict()
				for k, v := range req.Header {
					if k == echo.HeaderAuthorization {
						continue
					}
					header.Strs(k, v)
				}
				in = in.Dict("req_header", header)
			}

			if config.LogRequestBody && !config.RequestBodyLogSkipper(req) && req.Body != nil {
				reqBody, err := io.ReadAll(req.Body)
				if err != nil {
					return err
				}
				req.Body = io.NopCloser(bytes.NewBuffer(reqBody))
				in = in.Bytes("req_body", reqBody)
			}

			l := in.Logger()
			ctx := requestContext(req, id, l)
			c.SetRequest(req.WithContext(ctx))

			var resBody bytes.Buffer
			if config.LogResponseBody && !config.ResponseBodyLogSkipper(req, res) {
				res.Writer = &bodyDumpResponseWriter{Writer: io.MultiWriter(res.Writer, &resBody), ResponseWriter: res.Writer}
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			stop := time.Now()

			if config.Level == zerolog.NoLevel {
				return nil
			}

			ev := l.WithLevel(config.Level).Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", stop.Sub(start))

			if config.LogResponseHeader {
				header := zerolog.Dict()
				for k, v := range res.Header() {
					header.Strs(k, v)
				}
				ev = ev.Dict("res_header", header)
			}
			if resBody.Len() > 0 {
				ev = ev.Bytes("res_body", resBody.Bytes())
			}

			ev.Msg("http_request")

			return nil
		}
	}
}
