package entity

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"

	StatusStarting       Status = "STARTING"
	StatusStarted        Status = "STARTED"
	StatusStartingFailed Status = "STARTING_FAILED"

	StatusStopping       Status = "STOPPING"
	StatusStopped        Status = "STOPPED"
	StatusStoppingFailed Status = "STOPPING_FAILED"

	StatusTerminating       Status = "TERMINATING"
	StatusTerminated        Status = "TERMINATED"
	StatusTerminatingFailed Status = "TERMINATING_FAILED"
)

var knownStatuses = map[Status]struct{}{
	StatusPending:           {},
	StatusCompleted:         {},
	StatusFailed:            {},
	StatusStarting:          {},
	StatusStarted:           {},
	StatusStartingFailed:    {},
	StatusStopping:          {},
	StatusStopped:           {},
	StatusStoppingFailed:    {},
	StatusTerminating:       {},
	StatusTerminated:        {},
	StatusTerminatingFailed: {},
}

// reconcilerEdges are the transitions a lifecycle event is allowed to produce, by operation.
var reconcilerEdges = map[Operation]map[Status][]Status{
	OperationLaunch:    {StatusPending: {StatusStarting, StatusStarted, StatusCompleted, StatusFailed}},
	OperationStart:     {StatusStarting: {StatusStarted, StatusStartingFailed}},
	OperationStop:      {StatusStopping: {StatusStopped, StatusStoppingFailed}},
	OperationTerminate: {StatusTerminating: {StatusTerminated, StatusTerminatingFailed}},
}

// requestSources are the statuses a lifecycle command may be issued from.
// Terminal statuses are left only through a re-initialisation.
var requestSources = map[Operation][]Status{
	OperationStart:     {StatusStopped},
	OperationStop:      {StatusCompleted, StatusStarted},
	OperationTerminate: {StatusCompleted, StatusStarted, StatusStopped},
}

func (s Status) IsValid() bool {
	_, ok := knownStatuses[s]

	return ok
}

// IsTerminal reports whether nothing but a re-initialisation may move the environment out of s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusTerminated, StatusFailed, StatusStartingFailed, StatusStoppingFailed, StatusTerminatingFailed:
		return true
	default:
		return false
	}
}

// CanReconcile reports whether an event of the given operation may move an environment from one status to another.
func CanReconcile(operation Operation, from, to Status) bool {
	return contains(reconcilerEdges[operation][from], to)
}

// CanRequest reports whether the orchestrator may run operation on an environment in status from.
func CanRequest(operation Operation, from Status) bool {
	return contains(requestSources[operation], from)
}

func contains(statuses []Status, status Status) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}

	return false
}

// IsRelaunchable reports whether a new launch may reuse the environment id: no instance is left behind.
func (s Status) IsRelaunchable() bool {
	return s == StatusTerminated || s == StatusFailed
}
