//go:build lognone && !logprintln

package artraster

import "io"

func init() {
	LogOutput = io.Discard
	log = nilLog{}
}
