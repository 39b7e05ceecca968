package logger

import (
	"log/slog"

	"github.com/katalvlaran/stepviz/structure"
)

/*
Log attribute keys. Use the constructor functions below rather than the
keys directly so the same value is always logged the same way.
*/
const (
	KindKey      = "kind"
	OpKey        = "op"
	RunIDKey     = "run_id"
	StepIndexKey = "step"
	ErrorKey     = "err"
)

/*
Kind adds the structure kind. Sessions attach it once with logger.With so
every record of that session carries it.
*/
func Kind(k structure.Kind) slog.Attr {
	return slog.String(KindKey, string(k))
}

// Op adds the operation name.
func Op(op string) slog.Attr {
	return slog.String(OpKey, op)
}

// RunID identifies one playback run.
func RunID(id string) slog.Attr {
	return slog.String(RunIDKey, id)
}

// StepIndex is the zero-based position of a step in its sequence.
func StepIndex(i int) slog.Attr {
	return slog.Int(StepIndexKey, i)
}

/*
Error adds err to the log

	if err := f(); err != nil {
		log.Error("calling f", logger.Error(err))
	}
*/
func Error(err error) slog.Attr {
	return slog.Any(ErrorKey, err)
}
