package promisex

import "github.com/Danimarqz/moodleapp/pkg/errx"

var promiseErrors = errx.NewRegistry("PROMISE")

var (
	// ErrTimeout marks a promise discarded because its deadline elapsed.
	ErrTimeout = promiseErrors.Register("TIMEOUT", errx.TypeTimeout, "promise timed out")

	// ErrRejected marks a deferred rejected without an explicit cause.
	ErrRejected = promiseErrors.Register("REJECTED", errx.TypeInternal, "promise rejected")
)

// IsTimeout reports whether err is the timeout marker produced by WithTimeout,
// as opposed to a failure of the underlying task.
func IsTimeout(err error) bool {
	return errx.IsCode(err, ErrTimeout)
}
