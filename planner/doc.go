// SPDX-License-Identifier: MIT

// Package planner is the concurrency-safe facade over a building map.
//
// The core packages are single-threaded by contract: a BuildingMap performs
// no locking and a search must not overlap a mutation. Planner owns one map
// and serialises access with a sync.RWMutex so that any number of route
// queries run in parallel while edits run alone.
//
// Edits are transactional: Edit applies the caller's function to a clone and
// publishes the clone only if the function succeeds, so a failed edit never
// leaves a half-updated map behind.
//
// Every query gets a UUID, is logged through log/slog and is counted in the
// metrics registry (see internal/metrics).
package planner
