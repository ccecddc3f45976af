// Package labels holds the static reference data shared by the questionnaire
// screens and the report projections: option lists and value-to-label tables.
package labels

// Option is a stored value paired with the label shown to the user.
type Option struct {
	Value string
	Label string
}

// Table maps stored values to display labels while keeping display order.
type Table struct {
	options []Option
	index   map[string]string
}

// NewTable builds a table from options in display order.
func NewTable(options ...Option) Table {
	index := make(map[string]string, len(options))
	for _, o := range options {
		index[o.Value] = o.Label
	}
	return Table{options: options, index: index}
}

// Label returns the label for value and whether the table knows it.
func (t Table) Label(value string) (string, bool) {
	l, ok := t.index[value]
	return l, ok
}

// Options returns a copy of the options in display order.
func (t Table) Options() []Option {
	out := make([]Option, len(t.options))
	copy(out, t.options)
	return out
}

// Values returns the stored values in display order.
func (t Table) Values() []string {
	out := make([]string, len(t.options))
	for i, o := range t.options {
		out[i] = o.Value
	}
	return out
}

// Resolve applies the display fallback chain: table label, then the raw
// stored value, then placeholder when nothing was stored.
func (t Table) Resolve(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	if l, ok := t.index[value]; ok {
		return l
	}
	return value
}

// Plain builds options whose label equals their value.
func Plain(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}
