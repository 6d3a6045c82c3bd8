// Package logging prepares the zap logger used by the command line tool.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Level selects how much the tool reports.
type Level string

const (
	LevelNone   Level = "none"
	LevelNormal Level = "normal"
	LevelDebug  Level = "debug"
)

// New returns a console logger writing to w. Standard output is reserved for
// results, so everything goes to a single stream.
func New(w io.Writer, level Level) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoder := zapcore.NewConsoleEncoder(ec)

	var core zapcore.Core
	switch level {
	case LevelNormal:
		core = zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.InfoLevel
		}))
	case LevelDebug:
		core = zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.DebugLevel
		}))
	default:
		core = zapcore.NewNopCore()
	}
	return zap.New(core)
}
