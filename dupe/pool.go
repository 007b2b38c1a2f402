package dupe

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
)

// readBlockSize is the block size used to feed file content into the
// incremental hash.
const readBlockSize = 64 * 1024

// Result is the outcome of hashing one candidate file. Digest is the
// lowercase hex digest of the file's full content; Err is set instead when
// the file could not be read.
type Result struct {
	Path   string
	Digest string
	Err    error
}

// Pool hashes files on a fixed number of parallel workers.
type Pool struct {
	algorithm string
	jobs      int
}

// NewPool validates the configuration and returns a pool. An unrecognized
// algorithm fails with ErrUnknownAlgorithm and a negative worker count with
// ErrInvalidJobs, both before any work is accepted. A worker count of zero
// selects one worker per CPU.
func NewPool(algorithm string, jobs int) (*Pool, error) {
	if _, err := NewHash(algorithm); err != nil {
		return nil, err
	}
	if jobs < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidJobs, jobs)
	}
	if jobs == 0 {
		jobs = runtime.NumCPU()
	}
	return &Pool{algorithm: algorithm, jobs: jobs}, nil
}

// Algorithm returns the digest algorithm the pool was configured with.
func (p *Pool) Algorithm() string { return p.algorithm }

// Jobs returns the number of workers the pool runs.
func (p *Pool) Jobs() int { return p.jobs }

// HashAll submits every path to the worker pool and returns the stream of
// results in completion order. The channel is closed after the last result;
// an empty input closes it immediately without starting any work. Every
// submitted path yields exactly one Result, failed reads included.
func (p *Pool) HashAll(paths []string) <-chan Result {
	results := make(chan Result, p.jobs)
	if len(paths) == 0 {
		close(results)
		return results
	}

	work := make(chan string)
	var wg sync.WaitGroup

	wg.Add(p.jobs)
	for range p.jobs {
		go p.worker(work, results, &wg)
	}

	go func() {
		defer close(work)
		for _, path := range paths {
			work <- path
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Pool) worker(work <-chan string, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()

	for path := range work {
		digest, err := HashFile(path, p.algorithm)
		if err != nil {
			results <- Result{Path: path, Err: err}
			continue
		}
		results <- Result{Path: path, Digest: digest}
	}
}

// HashFile hashes a single file with the named algorithm and returns the
// lowercase hex digest of its content.
func HashFile(path, algorithm string) (string, error) {
	h, err := NewHash(algorithm)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.CopyBuffer(h, f, make([]byte, readBlockSize)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
