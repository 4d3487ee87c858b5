package numfmt

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

type loggerHolder struct{ l log.FieldLogger }

var pkgLogger atomic.Pointer[loggerHolder]

// SetLogger installs the logger that receives debug diagnostics for invalid
// formats and render fallbacks.  A nil logger restores the logrus standard
// logger.  Safe to call concurrently with Format.
func SetLogger(l log.FieldLogger) {
	if l == nil {
		pkgLogger.Store(nil)
		return
	}
	pkgLogger.Store(&loggerHolder{l: l})
}

func logger() log.FieldLogger {
	if h := pkgLogger.Load(); h != nil {
		return h.l
	}
	return log.StandardLogger()
}
