package crawl

import (
	"github.com/indigonode/sitecontact"
	"github.com/indigonode/sitecontact/bloom"
)

// Compile-time interface verification.
var _ sitecontact.URLFrontier = (*Frontier)(nil)

// Frontier is a first-in-first-out crawl queue with a visited set.
// Membership checks go through a Bloom filter first and fall back to an
// exact set only on a possible hit, so false positives never drop a URL.
//
// A Frontier belongs to a single discovery run and is not safe for
// concurrent use.
type Frontier struct {
	screen  *bloom.Filter
	visited map[string]struct{}
	queue   []string
	head    int
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for the screening filter.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		screen:  bloom.NewFilter(n, fpRate),
		visited: make(map[string]struct{}, n),
	}
}

// Push marks url visited and enqueues it.
// Returns false if the URL has already been visited.
func (f *Frontier) Push(url string) bool {
	if f.Seen(url) {
		return false
	}
	f.screen.Add(url)
	f.visited[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the oldest queued URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if f.head >= len(f.queue) {
		return "", false
	}
	url := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++
	if f.head == len(f.queue) {
		f.queue = f.queue[:0]
		f.head = 0
	}
	return url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	return len(f.queue) - f.head
}

// Seen returns true if the URL has been visited.
func (f *Frontier) Seen(url string) bool {
	if !f.screen.Test(url) {
		return false
	}
	_, ok := f.visited[url]
	return ok
}
