package colour

// assert checks an internal invariant. Fatal with the debugchecks build
// tag; compiled away in release builds.
func assert(cond bool, msg string) {
	if debugChecks && !cond {
		panic("colour: " + msg)
	}
}
