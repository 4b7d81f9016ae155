package synthesis

// Counter assigns run-wide sequential transaction numbers. One Counter is
// threaded through every month of a run so identifiers never reset.
type Counter struct {
	next int
}

// NewCounter starts a sequence at 1.
func NewCounter() *Counter {
	return &Counter{next: 1}
}

// Next returns the next sequence number.
func (c *Counter) Next() int {
	n := c.next
	c.next++
	return n
}
