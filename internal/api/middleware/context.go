package middleware

import (
	"bufio"
	"context"
	"io"
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"github/dlcplaza/go-dlcsigner/internal/util"
)

func requestContext(req *http.Request, requestID string, l zerolog.Logger) context.Context {
	ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, requestID)
	return l.WithContext(ctx)
}

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}
