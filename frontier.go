package sitecontact

// URLFrontier is the pending-fetch queue of a discovery run together with
// its visited set.
type URLFrontier interface {
	// Push marks url as visited and appends it to the queue.
	// Returns false if the URL was already visited.
	Push(url string) bool

	// Pop removes and returns the oldest queued URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been visited.
	Seen(url string) bool
}
