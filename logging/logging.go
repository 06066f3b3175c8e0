/*package logging configures the process-wide logger and provides runtime
statistics helpers.*/
package logging

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The logger is handled this way so that it doesn't need to be threaded
// through literally every function in the project. It defaults to a no-op
// so that library callers who never call Setup stay silent.
var log = zap.NewNop().Sugar()

// Setup builds the process-wide logger. With verbose set, debug-level
// messages are kept; otherwise only info and above are printed. All output
// goes to stderr so that stdout stays clean for data tables.
func Setup(verbose bool) error {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return err
	}
	log = logger.Sugar()
	return nil
}

// Log returns the process-wide logger.
func Log() *zap.SugaredLogger {
	return log
}

// MemString returns a string containing various statistics on the current
// memory usage of the process.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB; Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
