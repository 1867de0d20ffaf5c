// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

var formatter = logging.MustStringFormatter(`%{level:.4s} %{module}: %{message}`)

// Modules lists every logger the binary registers.
var Modules = []string{"pgmap", "pipeline", "peptide", "extend"}

// SetupLogging points all loggers at stderr, or at logFile when set, and
// applies level. quiet lowers everything to errors only. The returned
// closer releases the log file, if any.
func SetupLogging(stderr io.Writer, level string, quiet bool, logFile string) (io.Closer, error) {
	logging.SetFormatter(formatter)

	w := stderr
	var closer io.Closer = io.NopCloser(nil)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return nil, err
		}
		w, closer = f, f
	}
	logging.SetBackend(logging.NewLogBackend(w, "", 0))

	lvl, err := logging.LogLevel(level)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	if quiet {
		lvl = logging.ERROR
	}
	logging.SetLevel(lvl, "")
	for _, m := range Modules {
		logging.SetLevel(lvl, m)
	}
	return closer, nil
}
