// Package pipeline drives reads from a fastqio.Reader through a pool of
// worker goroutines, each with its own classify.Classifier, and
// reassembles the verdicts back into input order for deterministic
// output regardless of worker scheduling.
package pipeline

import (
	"io"
	"runtime"
	"sync"

	"github.com/komissarov/cookiecutter/internal/classify"
	"github.com/komissarov/cookiecutter/internal/fastqio"
	"github.com/komissarov/cookiecutter/internal/verdict"
)

// Job is one read submitted to the pool, tagged with its position in the
// input stream.
type Job struct {
	Seq    int
	Record fastqio.Record
}

// Result is the classified outcome of one Job.
type Result struct {
	Seq     int
	Record  fastqio.Record
	Verdict verdict.Verdict
}

// ClassifierFactory returns a new Classifier for one worker. Each worker
// gets its own instance because a Classifier's Scanner holds scan-local
// state that is not safe for concurrent use.
type ClassifierFactory func() *classify.Classifier

// Scheduler runs a pool of workers, each built from a fresh Classifier,
// over a stream of Jobs.
type Scheduler struct {
	workers int
	newC    ClassifierFactory
}

// New creates a Scheduler with the given number of workers. If workers is
// 0, it defaults to runtime.NumCPU().
func New(workers int, newC ClassifierFactory) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{workers: workers, newC: newC}
}

// Run classifies jobs from the given channel concurrently and returns a
// channel of Results, tagged with sequence numbers for ordered output.
// The returned channel is closed once jobs is drained and every worker has
// finished.
func (s *Scheduler) Run(jobs <-chan Job) <-chan Result {
	results := make(chan Result, s.workers*4)

	var wg sync.WaitGroup
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := s.newC()
			for j := range jobs {
				v := c.Classify(j.Record.Seq, j.Record.Qual)
				results <- Result{Seq: j.Seq, Record: j.Record, Verdict: v}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// Feed reads records from r and emits them as sequence-numbered Jobs on
// the returned channel, closing it (and reporting the first read error,
// if any, through errOut) once the reader is exhausted.
func Feed(r interface{ Next() (fastqio.Record, error) }, errOut *error) <-chan Job {
	jobs := make(chan Job, 256)
	go func() {
		defer close(jobs)
		var seq int
		for {
			rec, err := r.Next()
			if err != nil {
				if err != io.EOF {
					*errOut = err
				}
				return
			}
			jobs <- Job{Seq: seq, Record: rec}
			seq++
		}
	}()
	return jobs
}

// OrderedSink consumes Results from a channel and delivers them to onResult
// strictly in sequence-number order, buffering out-of-order results the
// same way a concurrent scan's output is serialized before being written.
type OrderedSink struct {
	next    int
	pending map[int]Result
	mu      sync.Mutex
}

// NewOrderedSink creates an empty OrderedSink.
func NewOrderedSink() *OrderedSink {
	return &OrderedSink{pending: make(map[int]Result)}
}

// Drain consumes results until the channel closes, calling onResult for
// each Result in increasing Seq order.
func (o *OrderedSink) Drain(results <-chan Result, onResult func(Result)) {
	for r := range results {
		o.mu.Lock()
		if r.Seq == o.next {
			onResult(r)
			o.next++
			for {
				p, ok := o.pending[o.next]
				if !ok {
					break
				}
				onResult(p)
				delete(o.pending, o.next)
				o.next++
			}
		} else {
			o.pending[r.Seq] = r
		}
		o.mu.Unlock()
	}
}
