// Package diagnostic provides structured warnings collected while a
// mapping spec is applied, for surfacing on the boundary's diagnostic
// channel.
//
// Key capabilities:
//   - Unknown transform name warnings
//   - Transform invocation failure reports
package diagnostic
