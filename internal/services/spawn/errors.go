package spawn

// SpawnError is a custom error type for spawn engine errors
type SpawnError string

// Error implements the error interface
func (e SpawnError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SpawnError = "config cannot be nil"
	ErrNilClock         SpawnError = "clock cannot be nil"
	ErrNilRoller        SpawnError = "dice roller cannot be nil"
	ErrNilUUIDGenerator SpawnError = "UUID generator cannot be nil"
	ErrInvalidBatchSize SpawnError = "batch size cannot be negative"
	ErrInvalidInterval  SpawnError = "spawn interval cannot be negative"
	ErrInvalidDrinkTTL  SpawnError = "drink TTL must be positive"
)
