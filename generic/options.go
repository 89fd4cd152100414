package generic

import "go.uber.org/zap"

// Option configures a HolidaySet at construction.
type Option func(*settings)

type settings struct {
	years       []int
	autoExpand  bool
	observed    bool
	subdivision string
	logger      *zap.Logger
}

func defaultSettings() settings {
	return settings{autoExpand: true, observed: true, logger: zap.NewNop()}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// WithYears expands the given years eagerly at construction.
func WithYears(years ...int) Option {
	return func(s *settings) { s.years = append(s.years, years...) }
}

// WithAutoExpand controls whether queries expand unseen years (default true).
func WithAutoExpand(v bool) Option {
	return func(s *settings) { s.autoExpand = v }
}

// WithObserved controls whether weekend holidays get "(Observed)" substitute
// days (default true).
func WithObserved(v bool) Option {
	return func(s *settings) { s.observed = v }
}

// WithSubdivision selects a province/state. It is validated against the
// jurisdiction's declared subdivisions.
func WithSubdivision(code string) Option {
	return func(s *settings) { s.subdivision = code }
}

// WithLogger sets the logger used for expansion and rebuild events.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}
