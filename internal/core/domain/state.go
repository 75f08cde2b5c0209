package domain

// UnitState is the lifecycle position of a unit within one run.
type UnitState int

const (
	// StatePending means the unit has not been looked at yet.
	StatePending UnitState = iota
	// StateEvaluating means the rebuild decision is being made.
	StateEvaluating
	// StateSkipped means the unit was up to date.
	StateSkipped
	// StateBuilding means the backend is configuring or building.
	StateBuilding
	// StateInstalling means copy rules are being applied.
	StateInstalling
	// StateVerifying means expected outputs are being checked.
	StateVerifying
	// StateRecorded means the manifest was persisted.
	StateRecorded
	// StateFailed means the unit failed and the run was halted.
	StateFailed
)

// String returns the lower-case name of the state.
func (s UnitState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateEvaluating:
		return "evaluating"
	case StateSkipped:
		return "skipped"
	case StateBuilding:
		return "building"
	case StateInstalling:
		return "installing"
	case StateVerifying:
		return "verifying"
	case StateRecorded:
		return "recorded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen in this run.
func (s UnitState) Terminal() bool {
	return s == StateSkipped || s == StateRecorded || s == StateFailed
}
