package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Production writes JSON lines, anything
// else writes human-readable console lines. An unparseable level falls back
// to warn and is reported through the returned error.
func New(w io.Writer, level string, production bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		if err == nil {
			err = errors.New("empty log level")
		}
		lvl = zerolog.WarnLevel
		err = fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	out := w
	if !production {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return logger, err
}
