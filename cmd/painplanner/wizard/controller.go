package wizard

import (
	"github.com/rs/zerolog"

	"github.com/mrsinham/painplanner/internal/assessment"
)

// Scroller resets the view to its top after a page change.
type Scroller interface {
	ScrollToTop()
}

// Controller tracks which page is shown and whether the user is done.
type Controller struct {
	store     *assessment.Store
	registry  []Descriptor
	index     int
	completed bool
	// rev changes on every transition so the view knows to rebuild.
	rev      int
	scroller Scroller
	logger   zerolog.Logger
}

// NewController starts on the first section. scroller may be nil.
func NewController(store *assessment.Store, registry []Descriptor, scroller Scroller, logger zerolog.Logger) *Controller {
	if store == nil {
		store = assessment.NewStore()
	}
	return &Controller{
		store:    store,
		registry: registry,
		scroller: scroller,
		logger:   logger,
	}
}

// SetScroller replaces the scroller.
func (c *Controller) SetScroller(s Scroller) {
	c.scroller = s
}

// Index returns the position of the current page.
func (c *Controller) Index() int {
	return c.index
}

// Completed reports whether the user finished with the summary.
func (c *Controller) Completed() bool {
	return c.completed
}

// Rev returns a counter bumped on every transition.
func (c *Controller) Rev() int {
	return c.rev
}

// Current returns the descriptor of the current page.
func (c *Controller) Current() Descriptor {
	return c.registry[c.index]
}

// Snapshot returns the current answers.
func (c *Controller) Snapshot() *assessment.Snapshot {
	return c.store.Snapshot()
}

func (c *Controller) onReport() bool {
	return !c.registry[c.index].Form
}

// Next advances one page. On the summary it marks the questionnaire
// completed and stays put.
func (c *Controller) Next() {
	switch {
	case c.onReport():
		c.completed = true
	case c.index < len(c.registry)-1:
		c.index++
	default:
		return
	}
	c.transition("next")
}

// Previous goes back one page unless on the first page or completed.
func (c *Controller) Previous() {
	if c.index == 0 || c.completed {
		return
	}
	c.index--
	c.transition("previous")
}

// EditSection jumps to the form section with id. Unknown ids, the report
// included, change nothing.
func (c *Controller) EditSection(id string) {
	for i, d := range c.registry {
		if d.ID == id && d.Form {
			c.completed = false
			c.index = i
			c.transition("edit")
			return
		}
	}
	c.logger.Debug().Str("section", id).Msg("Ignoring edit of unknown section")
}

// StartOver discards every answer and returns to the first section.
func (c *Controller) StartOver() {
	c.store.Reset()
	c.index = 0
	c.completed = false
	c.transition("start over")
}

// NextLabel is the caption of the forward action.
func (c *Controller) NextLabel() string {
	switch {
	case c.onReport():
		return "Done"
	case c.index == FormCount(c.registry)-1:
		return "View Summary"
	default:
		return "Next"
	}
}

// PreviousDisabled reports whether Previous would do nothing.
func (c *Controller) PreviousDisabled() bool {
	return c.index == 0
}

// Progress returns the step, the number of form sections, and whether the
// progress bar applies to the current page.
func (c *Controller) Progress() (int, int, bool) {
	total := FormCount(c.registry)
	if c.onReport() {
		return 0, total, false
	}
	return c.index + 1, total, true
}

func (c *Controller) transition(reason string) {
	c.rev++
	if c.scroller != nil {
		c.scroller.ScrollToTop()
	}
	c.logger.Debug().
		Str("reason", reason).
		Str("section", c.registry[c.index].ID).
		Int("index", c.index).
		Bool("completed", c.completed).
		Msg("Wizard transition")
}
