package profile

// ProfileError is a custom error type for profile service errors
type ProfileError string

// Error implements the error interface
func (e ProfileError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     ProfileError = "config cannot be nil"
	ErrNilRepository ProfileError = "profile repository cannot be nil"
	ErrNilInput      ProfileError = "input cannot be nil"
	ErrNilUpdate     ProfileError = "update function cannot be nil"
)
