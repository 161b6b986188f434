package terminal

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the saved mode and stops the resize watcher
	Fini()

	// Size returns the terminal dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
