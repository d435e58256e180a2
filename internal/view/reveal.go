package view

// RevealState is the two-state machine behind infinite scroll.
type RevealState int

const (
	RevealIdle RevealState = iota
	RevealLoading
)

func (s RevealState) String() string {
	if s == RevealLoading {
		return "loadingMore"
	}

	return "idle"
}

// DefaultRevealThreshold is how close to the bottom edge, in rows of
// rendered output, the viewport must be before more records are revealed.
const DefaultRevealThreshold = 500

// ScrollMetrics is the external collaborator interface: whoever owns the
// results viewport reports its scroll position in these units.
type ScrollMetrics struct {
	ScrollTop      int
	ScrollHeight   int
	ViewportHeight int
}

// RevealController turns raw scroll samples into at most one load-more
// request per near-bottom episode. It flips to loading on the first sample
// inside the threshold and ignores further samples until the visible
// dataset actually grows, so a burst of scroll events cannot double-fire.
// Callers are expected to coalesce scroll samples (the TUI only delivers
// discrete events); the controller itself guarantees single firing.
type RevealController struct {
	threshold  int
	state      RevealState
	lastLength int
	loadMore   func()
}

func NewRevealController(threshold int, loadMore func()) *RevealController {
	if threshold <= 0 {
		threshold = DefaultRevealThreshold
	}
	if loadMore == nil {
		loadMore = func() {}
	}

	return &RevealController{threshold: threshold, loadMore: loadMore}
}

func (c *RevealController) State() RevealState {
	return c.state
}

// Observe feeds one scroll sample into the state machine.
func (c *RevealController) Observe(metrics ScrollMetrics, hasMore bool) {
	if !hasMore {
		c.state = RevealIdle

		return
	}

	if c.state == RevealLoading {
		return
	}

	distance := metrics.ScrollHeight - metrics.ScrollTop - metrics.ViewportHeight
	if distance <= c.threshold {
		c.state = RevealLoading
		c.loadMore()
	}
}

// NotifyLength reports the current visible dataset length. Growth confirms
// the pending reveal took effect and re-arms the controller.
func (c *RevealController) NotifyLength(length int) {
	if c.state == RevealLoading && length > c.lastLength {
		c.state = RevealIdle
	}

	c.lastLength = length
}
