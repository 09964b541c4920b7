package delta

import (
	"fmt"
)

// FatalError records a failed transition or flush. The first fatal
// error poisons the whole State: every waiter, current or future,
// observes the same error instead of blocking forever on an epoch
// that will never commit.
type FatalError struct {
	Op    string
	Epoch Epoch
	Err   error
}

var _ = error(&FatalError{})

func (f *FatalError) Error() string {
	return fmt.Sprintf("delta %s failed: delta %d: %v", f.Op, f.Epoch, f.Err)
}
