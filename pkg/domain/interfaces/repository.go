package interfaces

// Repository defines the interface for data persistence. All data is keyed
// by an opaque user identity supplied by the caller; authentication itself
// lives outside this system.
type Repository interface {
	Timeline() TimelineRepository
	Deadline() DeadlineRepository
	Close() error
}
