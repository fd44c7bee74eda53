// Package plan implements the consolidation and conflict-detection engine.
//
// It turns raw tracker records into a single coherent planning view:
//
//	Normalize     raw records -> canonical Tasks
//	ResolveTasks  rewrite resource/customer names via configured alias maps
//	DetectConflicts  flag overlapping date intervals per resource
//	AssignScheduleStatus  On Time / Late / Overdue / Conflict!
//	Apply         AND-chain of optional predicate filters
//	Sort          stable multi-key ordering
//
// Run wires the stages in that order. Conflict detection always precedes
// filtering so the conflict predicate sees populated flags. Every stage is a
// pure transform over in-memory slices and returns a fresh slice.
package plan
