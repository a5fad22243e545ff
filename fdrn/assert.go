package fdrn

// assert checks a range precondition. With the debugchecks build tag the
// violation is fatal; release builds compile the check away and trust the
// caller's invariant.
func assert(cond bool, msg string) {
	if debugChecks && !cond {
		panic("fdrn: " + msg)
	}
}
