package bmssp

// Field is a single structured attribute attached to a trace Event: a typed
// key/value pair appended to one trace line, without committing this
// package to any particular logging library.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field; a small convenience so call sites read like
// F("level", l), F("bound", b) rather than struct literals.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Tracer observes internal BMSSP events without participating in the
// algorithm's control flow or correctness. The core recursion calls
// Tracer.Event at a handful of points (solve start/end, level entry/exit,
// each pivot search, BlockList pulls and batch-prepends); a no-op Tracer is the
// default so the hot path never pays for tracing it does not use.
//
// This interface intentionally has no dependency on any logging library:
// the concrete implementation used by the CLI drivers (internal/cli.Tracer)
// is backed by go.uber.org/zap, but bmssp itself stays a pure, synchronous
// library.
type Tracer interface {
	Event(name string, fields ...Field)
}

// noopTracer discards every event; used when no Tracer option is supplied.
type noopTracer struct{}

func (noopTracer) Event(string, ...Field) {}
