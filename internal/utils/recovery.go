package utils

import (
	"sync"
)

// RecoveryWithCallback keeps a panicking goroutine from wedging its
// WaitGroup: the callback observes the panic value, then the group is
// released. Goroutines using it still call wg.Done() on the normal path.
func RecoveryWithCallback(wg *sync.WaitGroup, callback func(cause any)) {
	if r := recover(); r != nil {
		if callback != nil {
			callback(r)
		}
		wg.Done()
	}
}
