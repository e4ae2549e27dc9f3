package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	DefaultMeasure string            // default measure key if QuerySpec.Measure is empty
	Colors         []string          // series colors, cycled
	ReferenceLines []ReferenceLine   // horizontal guides for charts
	YFloor         *float64          // lower bound of the value axis
	ShowValues     bool              // annotate chart values
	Placeholders   map[string]string // extra template values for text panels
}

// WithDefaultMeasure sets the measure to aggregate when QuerySpec.Measure is empty.
func WithDefaultMeasure(measure string) Option {
	return func(c *config) {
		c.DefaultMeasure = measure
	}
}

// WithColors overrides the chart palette.
func WithColors(colors ...string) Option {
	return func(c *config) {
		c.Colors = colors
	}
}

// WithReferenceLine adds a constant horizontal line to chart output.
// The value never depends on the data being charted.
func WithReferenceLine(value float64, label, color string) Option {
	return func(c *config) {
		c.ReferenceLines = append(c.ReferenceLines, ReferenceLine{Value: value, Label: label, Color: color})
	}
}

// WithYFloor clamps the bottom of the value axis.
func WithYFloor(v float64) Option {
	return func(c *config) {
		c.YFloor = &v
	}
}

// WithValueLabels annotates each chart point with its value.
func WithValueLabels() Option {
	return func(c *config) {
		c.ShowValues = true
	}
}

// WithPlaceholders supplies template values for text panels.
// Caller values win over the engine's computed ones.
func WithPlaceholders(values map[string]string) Option {
	return func(c *config) {
		if c.Placeholders == nil {
			c.Placeholders = make(map[string]string, len(values))
		}
		for k, v := range values {
			c.Placeholders[k] = v
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
