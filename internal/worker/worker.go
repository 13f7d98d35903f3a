// Package worker runs the four long-lived background executors —
// directory I/O, preview I/O, find, and file-op — each fed by a buffered
// task channel (capacity 64; a Submit call blocks while its channel is
// full) and reporting back on a single shared response channel. Every response implements RequestIDer so the coordinator can
// discard stale results the same way bubbletea-style epoch messages do.
package worker

import (
	"log/slog"
	"runtime"
)

// RequestIDer is implemented by every response so the coordinator can
// detect and drop results superseded by a newer request before they were
// delivered. Mirrors the EpochMessage convention used for async staleness
// checks across the example pack.
type RequestIDer interface {
	GetRequestID() uint64
}

// Pool owns the four task queues and the shared response queue. It is
// created once at startup and lives for the process lifetime.
type Pool struct {
	dirTasks     chan DirTask
	previewTasks chan PreviewTask
	findTasks    chan FindTask
	fileopTasks  chan FileOpTask

	Responses chan Response

	log *slog.Logger
}

// Spawn starts all four workers and returns the Pool used to submit tasks
// and drain responses. numCPU governs the find worker's walk concurrency;
// pass DefaultNumCPU() in production and a small fixed value in tests.
func Spawn(log *slog.Logger, numCPU int) *Pool {
	if log == nil {
		log = slog.Default()
	}
	if numCPU < 1 {
		numCPU = 1
	}

	p := &Pool{
		dirTasks:     make(chan DirTask, 64),
		previewTasks: make(chan PreviewTask, 64),
		findTasks:    make(chan FindTask, 64),
		fileopTasks:  make(chan FileOpTask, 64),
		Responses:    make(chan Response, 256),
		log:          log.With("component", "worker"),
	}

	go p.runDirWorker()
	go p.runPreviewWorker()
	go p.runFindWorker(numCPU)
	go p.runFileOpWorker()

	return p
}

// SubmitDir enqueues a directory-load task.
func (p *Pool) SubmitDir(t DirTask) { p.dirTasks <- t }

// SubmitPreview enqueues a preview-load task.
func (p *Pool) SubmitPreview(t PreviewTask) { p.previewTasks <- t }

// SubmitFind enqueues a find task.
func (p *Pool) SubmitFind(t FindTask) { p.findTasks <- t }

// SubmitFileOp enqueues a file-operation task.
func (p *Pool) SubmitFileOp(t FileOpTask) { p.fileopTasks <- t }

// DefaultNumCPU mirrors the original's num_cpus::get().saturating_sub(1).max(1).
func DefaultNumCPU() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		return 1
	}
	return n
}
