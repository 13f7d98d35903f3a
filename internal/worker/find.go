package worker

import (
	"container/heap"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sahilm/fuzzy"
)

// ignoredDirNames mirrors ignore::WalkBuilder's standard_filters(true): we
// don't implement full gitignore parsing, but we do skip the conventional
// noise directories a recursive find should never descend into.
var ignoredDirNames = map[string]struct{}{
	".git": {}, "node_modules": {}, "target": {}, ".cache": {},
}

func (p *Pool) runFindWorker(numWorkers int) {
	for t := range p.findTasks {
		// Coalesce: drain the queue, keeping only the newest task. Cancel
		// every superseded task's token so its walk stops promptly.
		for drained := true; drained; {
			select {
			case next := <-p.findTasks:
				if t.Cancel != nil {
					t.Cancel.Store(true)
				}
				t = next
			default:
				drained = false
			}
		}

		results := findRecursive(t.BaseDir, t.Query, t.Cancel, t.MaxResults, numWorkers)

		if t.Cancel != nil && t.Cancel.Load() {
			continue
		}

		p.Responses <- Response{
			Kind:      ResponseFindResults,
			BaseDir:   t.BaseDir,
			Results:   results,
			RequestID: t.RequestID,
		}
	}
}

// workQueue is an unbounded LIFO worklist guarded by a mutex and condition
// variable. Unlike a buffered channel, push never blocks, so a worker
// goroutine can safely enqueue more work from inside the loop that
// consumes it without risking every worker blocking on a full buffer at
// once (see the comment in findRecursive).
type workQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []string
	closed bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *workQueue) push(dir string) {
	q.mu.Lock()
	q.items = append(q.items, dir)
	q.mu.Unlock()
	q.cond.Signal()
}

// pop blocks until an item is available or the queue is closed, returning
// ok=false once closed with nothing left to hand out.
func (q *workQueue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return "", false
	}
	last := len(q.items) - 1
	dir := q.items[last]
	q.items = q.items[:last]
	return dir, true
}

// close marks the queue closed and wakes every blocked waiter.
func (q *workQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

type heapEntry struct {
	score int
	path  string
	isDir bool
}

type resultHeap []heapEntry

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].score < h[j].score } // min-heap
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// findRecursive performs a parallel, fuzzy-scored filesystem walk rooted
// at baseDir, returning up to maxResults matches sorted by score
// descending. An empty query performs no walk and returns no results.
func findRecursive(baseDir, query string, cancel *atomic.Bool, maxResults, numWorkers int) []FindResult {
	if query == "" {
		return nil
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	// The walk's frontier is an unbounded worklist (a mutex-guarded slice
	// plus a condition variable), not a buffered channel: a buffered
	// channel has a fixed capacity, and enqueue is called recursively from
	// inside the very worker goroutines that would need to be draining it
	// — once the frontier outgrows the buffer while every worker is
	// simultaneously blocked trying to push more of it, nobody is left to
	// receive and the walk deadlocks. A growable slice never blocks a
	// producer, so that pathological ordering can't occur.
	q := newWorkQueue()
	var wg sync.WaitGroup

	var mu sync.Mutex
	h := &resultHeap{}
	heap.Init(h)

	cancelled := func() bool {
		return cancel != nil && cancel.Load()
	}

	enqueue := func(dir string) {
		wg.Add(1)
		q.push(dir)
	}

	var workerWG sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		workerWG.Add(1)
		go func() {
			defer workerWG.Done()
			for {
				dir, ok := q.pop()
				if !ok {
					return
				}
				if cancelled() {
					wg.Done()
					continue
				}
				des, err := os.ReadDir(dir)
				if err != nil {
					wg.Done()
					continue
				}
				for _, de := range des {
					if cancelled() {
						break
					}
					name := de.Name()
					full := filepath.Join(dir, name)
					isDir := de.IsDir()

					rel, err := filepath.Rel(baseDir, full)
					if err != nil {
						rel = full
					}
					rel = normalizeRelativePath(rel)

					if m := fuzzy.Find(query, []string{rel}); len(m) > 0 {
						score := m[0].Score
						mu.Lock()
						if h.Len() < maxResults || score > (*h)[0].score {
							heap.Push(h, heapEntry{score: score, path: full, isDir: isDir})
							if h.Len() > maxResults {
								heap.Pop(h)
							}
						}
						mu.Unlock()
					}

					if isDir {
						if _, skip := ignoredDirNames[name]; skip {
							continue
						}
						enqueue(full)
					}
				}
				wg.Done()
			}
		}()
	}

	// enqueue(baseDir) must run (and so must its wg.Add(1)) before the
	// watcher below ever calls wg.Wait — otherwise Wait could observe a
	// still-zero counter and close the queue before any work exists.
	enqueue(baseDir)

	// Once every pending directory has been accounted for (wg's counter
	// returns to zero), close the queue so idle workers stop waiting.
	go func() {
		wg.Wait()
		q.close()
	}()

	workerWG.Wait()

	if cancelled() {
		return nil
	}

	sorted := make([]heapEntry, len(*h))
	copy(sorted, *h)
	// resultHeap is a min-heap; sort descending by score for final output.
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].score > sorted[i].score {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	out := make([]FindResult, 0, len(sorted))
	for _, e := range sorted {
		rel, err := filepath.Rel(baseDir, e.path)
		if err != nil {
			rel = e.path
		}
		out = append(out, FindResult{
			Path:     e.path,
			Relative: normalizeRelativePath(rel),
			IsDir:    e.isDir,
			Score:    e.score,
		})
	}
	return out
}

func normalizeRelativePath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
