package memory

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = goerr.New("record not found")

// Memory is an in-memory Repository implementation for tests and local
// development. Data does not survive a restart.
type Memory struct {
	timeline *timelineRepository
	deadline *deadlineRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		timeline: newTimelineRepository(),
		deadline: newDeadlineRepository(),
	}
}

func (m *Memory) Timeline() interfaces.TimelineRepository {
	return m.timeline
}

func (m *Memory) Deadline() interfaces.DeadlineRepository {
	return m.deadline
}

func (m *Memory) Close() error {
	return nil
}
