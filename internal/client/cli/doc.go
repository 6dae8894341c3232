// Package cli is the socialecho client front end. It restores the session
// from the local profile database and runs one command against it:
//
//	status   print who is signed in (default)
//	logout   drop the stored session
package cli
