// Package directory fetches user payloads from the public random-user
// directory service. It is the single network boundary of stepboard: one GET
// per screen mount, all-or-nothing, with every failure reported as a
// FetchError matching ErrFetchFailure.
package directory
