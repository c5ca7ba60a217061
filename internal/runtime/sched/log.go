package sched

// logStarted, logStole, and friends centralize the structured fields
// each call site logs: one short line per lifecycle transition, args
// as key/value pairs, built on log/slog.

func (w *Worker) logStarted() {
	w.runtime.logger.Info("worker started", "worker", w.id, "tid", w.tid, "cpu", w.cpu)
}

func (w *Worker) logTerminated() {
	w.runtime.logger.Info("worker terminated", "worker", w.id)
}

func (w *Worker) logStole(victim *Worker, actor Actor) {
	w.runtime.logger.Debug("stole actor", "worker", w.id, "victim", victim.id, "actor", actor.ID())
}

func (w *Worker) logBlocked() {
	w.runtime.logger.Debug("sent BLOCK", "worker", w.id)
}

func (w *Worker) logUnblocked() {
	w.runtime.logger.Debug("sent UNBLOCK", "worker", w.id)
}

func (rt *Runtime) logQuiescent() {
	rt.logger.Info("runtime quiescent, broadcasting TERMINATE")
}

func (rt *Runtime) logASIOStopFailed(err error) {
	rt.logger.Debug("asio stop deferred", "error", err)
}
