package assert

import "github.com/bloeys/nmage-recipes/logging"

// T panics with the formatted message if check is false
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	logging.ErrLog.Panicf("Assert failed: "+msg, args...)
}
