package logging

import "sync"

// resetOnce lets tests re-run Init's once-guarded body under different
// DOG_DEBUG values. It has no production caller.
func resetOnce() {
	once = sync.Once{}
}
