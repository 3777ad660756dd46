package debug

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/ir"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu  sync.Mutex
	logger = newLogger()
)

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel)
	return zap.New(core).Named("spatch")
}

// Logger returns the logger used by Logf.
func Logger() *zap.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	return logger
}

// SetLogger replaces the logger used by Logf and returns the previous one.
func SetLogger(l *zap.Logger) *zap.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	old := logger
	logger = l
	return old
}

// Logf formats msg with args and logs it at debug level.  *ir.Node
// arguments are rendered as compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			d, err := encode.MarshalJSON(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", *x)
				continue
			}
			args[i] = string(d)
		}
	}
	Logger().Sugar().Debug(strings.TrimSuffix(fmt.Sprintf(msg, args...), "\n"))
}
