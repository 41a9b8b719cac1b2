package trek

// TrekError is a custom error type for trek service errors
type TrekError string

// Error implements the error interface
func (e TrekError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound    TrekError = "no active trek for this user"
	ErrNotAtBar           TrekError = "not close enough to the bar"
	ErrBarNotFound        TrekError = "bar not found"
	ErrBeverageNotFound   TrekError = "beverage not found"
	ErrInvalidCoordinate  TrekError = "coordinate out of range"
	ErrEmptyUserID        TrekError = "user ID cannot be empty"
	ErrShuttingDown       TrekError = "trek service is shutting down"
	ErrNilInput           TrekError = "input cannot be nil"
	ErrNilConfig          TrekError = "config cannot be nil"
	ErrNilProfileService  TrekError = "profile service cannot be nil"
	ErrNilVisitLedgerRepo TrekError = "visit ledger repository cannot be nil"
	ErrNilClock           TrekError = "clock cannot be nil"
	ErrNilRoller          TrekError = "dice roller cannot be nil"
	ErrNilUUIDGenerator   TrekError = "UUID generator cannot be nil"
	ErrInvalidRadius      TrekError = "radius cannot be negative"
)
