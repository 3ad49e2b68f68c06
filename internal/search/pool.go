package search

import (
	"sync"

	"github.com/mixtint/mixtint/internal/recipe"
)

// forEachSubset evaluates fn over every subset on a bounded worker pool and
// returns the per-subset results concatenated in enumeration order. Subset
// evaluations are independent and side-effect-free, so no coordination is
// needed beyond collecting into the index-addressed results slice; keeping
// enumeration order preserves stable first-seen tie-breaking in ranking no
// matter how the scheduler interleaves workers.
func forEachSubset(workers int, subsets [][]int, fn func(subset []int) []recipe.Candidate) []recipe.Candidate {
	if workers > len(subsets) {
		workers = len(subsets)
	}
	results := make([][]recipe.Candidate, len(subsets))

	if workers <= 1 {
		for i, s := range subsets {
			results[i] = fn(s)
		}
		return flatten(results)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(subsets[i])
			}
		}()
	}
	for i := range subsets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return flatten(results)
}

func flatten(results [][]recipe.Candidate) []recipe.Candidate {
	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]recipe.Candidate, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// bestList keeps the cap lowest-error candidates seen so far, in insertion
// order for equal errors. Within one subset every split has a distinct
// recipe identity, so keeping the top K per subset is sufficient for a
// globally correct top-K after ranking.
type bestList struct {
	cap   int
	items []recipe.Candidate
}

func newBestList(capacity int) *bestList {
	return &bestList{cap: capacity, items: make([]recipe.Candidate, 0, capacity)}
}

// add inserts the candidate if it ranks within the capacity. Strict
// less-than keeps the earliest candidate on ties.
func (b *bestList) add(c recipe.Candidate) {
	pos := len(b.items)
	for pos > 0 && c.Error < b.items[pos-1].Error {
		pos--
	}
	if pos >= b.cap {
		return
	}
	if len(b.items) < b.cap {
		b.items = append(b.items, recipe.Candidate{})
	}
	copy(b.items[pos+1:], b.items[pos:])
	b.items[pos] = c
}
