package shamir

import "github.com/pkg/errors"

var (
	// ErrInvalidThreshold is returned when the threshold is below 2.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 2")

	// ErrInvalidParticipants is returned when the participant count is below
	// the threshold or does not fit below the modulus.
	ErrInvalidParticipants = errors.New("shamir: invalid participant count")

	// ErrState is returned when an operation runs before its predecessor or
	// tries to overwrite a value that is set once.
	ErrState = errors.New("shamir: operation not allowed in current state")

	// ErrIndexOutOfRange is returned for a share lookup outside [0, N).
	ErrIndexOutOfRange = errors.New("shamir: share index out of range")

	// ErrArgument is returned when a call violates its contract, such as the
	// linear-system method receiving more shares than the threshold.
	ErrArgument = errors.New("shamir: invalid argument")

	// ErrDuplicatePoint is returned when two shares carry the same x.
	ErrDuplicatePoint = errors.New("shamir: duplicate share point")

	// ErrSingularMatrix is returned when the reconstruction system has no
	// unique solution.
	ErrSingularMatrix = errors.New("shamir: singular matrix")

	// ErrInsufficientShares is returned for an empty subset, or for a subset
	// below the threshold when a reconstructor is strict.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrInconsistentShares is returned when shares do not lie on one polynomial.
	ErrInconsistentShares = errors.New("shamir: shares are inconsistent")

	// ErrInvalidShare is returned when share data is malformed.
	ErrInvalidShare = errors.New("shamir: invalid share")
)
