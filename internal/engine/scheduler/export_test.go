package scheduler

import (
	"maps"

	"go.trai.ch/unibuild/internal/core/domain"
)

// GetUnitStatusMap returns a copy of the internal unit status map.
// This is exported for testing purposes only.
func (s *Scheduler) GetUnitStatusMap() map[string]domain.UnitState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.unitStatus)
}
