//go:build debugchecks

package fdrn

const debugChecks = true
