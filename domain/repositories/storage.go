package repositories

// AudioStore is the key-value cache for synthesized audio artifacts.
// Keys are deterministic filenames; values are the persisted payloads.
// The backing store is injectable so tests can run fully in memory.
type AudioStore interface {
	// Exists reports whether an artifact is already cached.
	Exists(filename string) bool

	// Save persists an artifact under the given filename.
	Save(filename string, data []byte) error

	// RandomExisting picks a uniformly random cached .mp3 filename.
	// The second return is false when the store holds no audio.
	RandomExisting() (string, bool)

	// URL returns the public URL for a cached filename.
	URL(filename string) string
}
