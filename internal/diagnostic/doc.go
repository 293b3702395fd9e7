// Package diagnostic provides structured errors and warnings reported while
// generating enum artifacts.
//
// A failure for one enum never aborts a batch; it is recorded here with a
// stable code and the orchestrator moves on to the next enum.
package diagnostic
