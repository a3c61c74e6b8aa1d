// Package workers manages the application's background workers. It defines
// the Worker interface and a Workers aggregate that starts them together.
package workers

// Worker is implemented by every background worker. Run starts the
// worker's execution; implementations either block for the duration of
// their work or spawn goroutines internally.
type Worker interface {
	Run()
}
