package calculation

// Logger receives progress from RunPortfolio: one Infof per projected entry,
// a Warnf when an SWP runs dry, an Errorf for the entry that aborts a run, and
// per-year Debugf lines when the engine's Debug flag is set. The CLI passes a
// *zap.SugaredLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything; engines start with it.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
