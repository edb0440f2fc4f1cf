// Package goroutine launches goroutines that log panics instead of crashing the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"pulseboard/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs a recovered panic with its stack.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
