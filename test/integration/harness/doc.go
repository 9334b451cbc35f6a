// Package harness provides utilities for integration testing the hookpin CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - HOOKPIN_HOME: Isolated per test (temp directory)
//   - HOOKPIN_DEBUG: Disabled to reduce noise
//   - HOOKPIN_COLOR: Set to never so output can be matched verbatim
//   - SKIP: Cleared so the caller's shell cannot skip hooks
package harness
