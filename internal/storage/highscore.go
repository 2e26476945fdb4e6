package storage

// ScopedHighScore exposes one scope's high score as a single named integer,
// the shape the game engine persists through.
type ScopedHighScore struct {
	store *Store
	key   string
}

// HighScoreFor returns the high-score handle for a scope.
// An empty name uses DefaultHighScoreKey.
func (s *Store) HighScoreFor(scope, name string) *ScopedHighScore {
	if name == "" {
		name = DefaultHighScoreKey
	}
	return &ScopedHighScore{store: s, key: HighScoreKey(name, scope)}
}

// LoadHighScore reads the stored value.
func (h *ScopedHighScore) LoadHighScore() (int, error) {
	return h.store.HighScore(h.key)
}

// SaveHighScore stores score unless a greater value is already stored.
func (h *ScopedHighScore) SaveHighScore(score int) error {
	_, err := h.store.RaiseHighScore(h.key, score)
	return err
}
