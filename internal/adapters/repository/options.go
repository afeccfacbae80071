package repository

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithoutBootstrap skips schema creation on open. Used when the store is
// pointed at a database owned by the surrounding application; a missing
// schedules table then degrades schedule reads instead of failing them.
func WithoutBootstrap() Option {
	return func(s *SQLiteStore) {
		s.bootstrap = false
	}
}

// WithMaxOpenConns bounds the connection pool.
func WithMaxOpenConns(n int) Option {
	return func(s *SQLiteStore) {
		if n > 0 {
			s.maxOpenConns = n
		}
	}
}
