// Package cli drives the interactive moderator promotion: it connects to the
// database, asks the operator to pick a moderator and a community, and
// reports the outcome as a process exit code.
package cli
