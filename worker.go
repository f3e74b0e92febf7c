// FILE: worker.go
package daylog

import (
	"time"
)

// run is the consumer loop, one goroutine per writer. It blocks on the
// signal channel between flushes; wake sources are Enqueue (rate-limited
// by the flush interval), ForcePush, and Close. On each wake it swaps the
// whole pending queue out under the mutex and writes the batch with the
// mutex released, so producers are never blocked by I/O.
func (w *Writer) run() {
	defer w.workerExited.Store(true)

	if !w.quit.Load() {
		<-w.signal
	}

	for !w.quit.Load() {
		w.mu.Lock()
		batch := w.queue
		w.queue = nil
		w.mu.Unlock()

		w.write(batch)

		w.lastActive.Store(time.Now())

		if w.quit.Load() {
			break
		}
		<-w.signal
	}
}
