//go:build !lognone && !logprintln

package artraster

import (
	"log/slog"
	"os"
)

func init() {
	LogOutput = os.Stderr
	log = slog.Default()
}
