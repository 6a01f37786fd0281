package config

// Test-only accessors for fields normally set through CLI flags.

func (l *Logger) SetForTest(level, format, output string) {
	l.level = level
	l.format = format
	l.output = output
}

func (a *AppConfig) SetPathForTest(path string) {
	a.path = path
}

func (r *Repository) SetForTest(backend, projectID, databaseID string) {
	r.backend = backend
	r.projectID = projectID
	r.databaseID = databaseID
}
