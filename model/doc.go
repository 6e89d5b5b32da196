// Package model contains the in-memory representation of the simulated
// system: processes with their creation tree and resources with their unit
// ledgers.
//
// The records defined in the `process` and `resource` sub-packages are owned
// by the engine services; callers outside the engine only ever see the
// read-only snapshots those packages produce.
package model
