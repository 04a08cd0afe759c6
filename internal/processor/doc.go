// Package processor contains the core dictionary build logic. It gathers
// the embedded word list and any merge files, hands them to the
// dictionary writer, reports the result on the console and optionally
// records the build in the history ledger. This package serves as the
// main coordinator between all other components.
package processor
