package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources around a session: the speaker, the level
// file watcher, the tick loop
//
// Lifecycle:
//  1. Construction, fully configured
//  2. Start() - acquire devices, launch goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Start begins service operation (launches goroutines if any)
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Func adapts plain start and stop functions to a Service
type Func struct {
	ID        string
	DependsOn []string
	OnStart   func() error
	OnStop    func() error
}

func (f *Func) Name() string           { return f.ID }
func (f *Func) Dependencies() []string { return f.DependsOn }

func (f *Func) Start() error {
	if f.OnStart == nil {
		return nil
	}
	return f.OnStart()
}

func (f *Func) Stop() error {
	if f.OnStop == nil {
		return nil
	}
	return f.OnStop()
}
