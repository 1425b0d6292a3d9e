package ipc

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	discardLogger = log.New(io.Discard, "", 0)
	stderrLogger  = log.New(os.Stderr, "", 0)
)

func (e *Endpoint) log(format string, v ...interface{}) {
	prefix := fmt.Sprintf("[%p] ", e)
	message := fmt.Sprintf(format, v...)
	e.cfg.Logger.Print(prefix + message)
}
