//go:build debugchecks

package colour

const debugChecks = true
