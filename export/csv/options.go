package csv

type Option func(e *Exporter)

// WithAppend keeps existing file content and appends new rows across
// runs, instead of overwriting the file
func WithAppend(enabled bool) Option {
	return func(e *Exporter) {
		e.appendRun = enabled
	}
}

// WithLinks appends the per-outcome deep link columns to the schema
func WithLinks(enabled bool) Option {
	return func(e *Exporter) {
		e.withLinks = enabled
	}
}
