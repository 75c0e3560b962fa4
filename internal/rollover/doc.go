// Package rollover triggers the daily schedule regeneration in daemon mode.
//
// The schedule itself is never persisted: each trigger rebuilds it from
// scratch from the current planner state. The service wraps robfig/cron with
// a single worker draining a small queue, so a slow regeneration can never
// stack concurrent runs, and keeps a bounded history of recent runs.
package rollover
