package richtext

// Builder accumulates runs in order.
type Builder struct {
	runs Text
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		runs: make(Text, 0),
	}
}

// Add appends one run. Runs are kept even when their text is empty.
func (b *Builder) Add(r Run) {
	b.runs = append(b.runs, r)
}

// Append appends already built runs.
func (b *Builder) Append(t Text) {
	for _, r := range t {
		b.Add(r)
	}
}

// Text returns the accumulated runs. The builder must not be used afterwards.
func (b *Builder) Text() Text {
	return b.runs
}
