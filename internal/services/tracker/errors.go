package tracker

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       TrackerError = "config cannot be nil"
	ErrNilEngine       TrackerError = "spawn engine cannot be nil"
	ErrNilProfile      TrackerError = "profile updater cannot be nil"
	ErrNilLocation     TrackerError = "location source cannot be nil"
	ErrNilClock        TrackerError = "clock cannot be nil"
	ErrInvalidRadius   TrackerError = "radius cannot be negative"
	ErrInvalidInterval TrackerError = "interval cannot be negative"
	ErrAlreadyRunning  TrackerError = "tracker is already running"
)
