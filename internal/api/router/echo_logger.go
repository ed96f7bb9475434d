package router

import (
	"github.com/rs/zerolog"
)

// echoLogger forwards echo's internal log output to zerolog.
type echoLogger struct {
	level zerolog.Level
	log   zerolog.Logger
}

func (l *echoLogger) Write(p []byte) (int, error) {
	n := len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}

	l.log.WithLevel(l.level).Msg(string(p))

	return n, nil
}
