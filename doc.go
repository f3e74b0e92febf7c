// Package daylog is an asynchronous, day-rotating text log writer.
//
// Producers enqueue formatted lines into an in-memory queue; a dedicated
// background worker per writer drains the queue in batches and appends
// them to a file and/or console sink. When a flush crosses a day
// boundary the destination file is renamed with the previous date and
// optionally handed to an external archiver (7z). File writes and
// archiver invocations are each serialized process-wide across all
// writer instances.
//
// Enqueue never blocks on I/O and never surfaces errors; lines buffered
// but not yet flushed may be lost on process crash.
package daylog
