package cli

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bmssp/bmssp"
)

// Tracer renders solver events as one JSON line each, tagged with a
// per-run correlation id and a monotonically increasing sequence number so
// several runs appended to the same file can be told apart and replayed in
// order. It satisfies bmssp.Tracer.
//
// The solver is single-threaded, so the unguarded seq counter is safe.
type Tracer struct {
	logger *zap.Logger
	runID  string
	seq    int
}

// NewTracer opens (appending) a JSONL trace file at path. The returned
// close function flushes and closes the sink; call it after the solve
// finishes.
func NewTracer(path string) (*Tracer, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey:     "event",
		TimeKey:        "ts",
		EncodeTime:     zapcore.EpochTimeEncoder,
		LevelKey:       zapcore.OmitKey,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.InfoLevel)
	logger := zap.New(core)

	tr := &Tracer{logger: logger, runID: uuid.NewString()}
	closeFn := func() error {
		if err := logger.Sync(); err != nil {
			f.Close()

			return err
		}

		return f.Close()
	}

	return tr, closeFn, nil
}

// RunID returns the correlation id stamped on every event of this Tracer.
func (t *Tracer) RunID() string { return t.runID }

// Event writes one JSONL line for a solver event.
func (t *Tracer) Event(name string, fields ...bmssp.Field) {
	zfields := make([]zap.Field, 0, len(fields)+2)
	zfields = append(zfields, zap.String("run_id", t.runID), zap.Int("seq", t.seq))
	t.seq++
	for _, f := range fields {
		zfields = append(zfields, zap.Any(f.Key, f.Value))
	}
	t.logger.Info(name, zfields...)
}
