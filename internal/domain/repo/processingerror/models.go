package processingerror

import "time"

type ProcessingError struct {
	ProcessingContext ProcessingContext
	Sources           Sources
	Reason            Reason
}

type ProcessingContext struct {
	Component Component
	Time      time.Time
	Host      string
}

type Component struct {
	Name     string
	Version  string
	Branch   string
	Revision string
}

type Sources struct {
	Main       Source
	Additional []KeyValue
}

type Source struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Payload   []byte
}

type KeyValue struct {
	Key   string
	Value []byte
}

type Reason struct {
	Category  string
	Kind      Kind
	Retryable bool
	Error     string
}

// Kind mirrors the lifecycle error taxonomy so dead letters can be triaged without parsing messages.
type Kind string

const (
	KindAccessDenied       Kind = "access_denied"
	KindExternalDependency Kind = "external_dependency"
	KindNotFound           Kind = "not_found"
	KindMalformedEvent     Kind = "malformed_event"
	KindPrecondition       Kind = "precondition"
	KindConflict           Kind = "conflict"
	KindUnknown            Kind = "unknown"
)
