package engine

// Default tunables.
const (
	DefaultThreshold      Weight = 1
	DefaultTakeWordsMin          = 3
	DefaultTakeWordsMax          = 30
	DefaultTakeWordsPct          = 10
	DefaultMinWordLength         = 4
)

// Config holds the engine tunables. It is read-only for the lifetime
// of an Engine.
type Config struct {
	// Threshold is the minimum weight a keyword needs to be extracted.
	Threshold Weight
	// TakeWordsMin and TakeWordsMax bound the number of words an
	// extraction may return.
	TakeWordsMin int
	TakeWordsMax int
	// TakeWordsPercentage sizes Feed's extraction window as a
	// percentage of the normalized message's character length.
	TakeWordsPercentage int
	// MinWordLength drops shorter words from extraction. It also
	// serves as the lower clamp for extraction windows, matching the
	// original behavior; see UseTakeWordsMin.
	MinWordLength int
	// UseTakeWordsMin clamps extraction windows to TakeWordsMin
	// instead of MinWordLength. The legacy clamp reuses a word-length
	// value as a word count; this opts into the corrected bound.
	UseTakeWordsMin bool
}

// DefaultConfig returns the default tunables.
func DefaultConfig() Config {
	return Config{
		Threshold:           DefaultThreshold,
		TakeWordsMin:        DefaultTakeWordsMin,
		TakeWordsMax:        DefaultTakeWordsMax,
		TakeWordsPercentage: DefaultTakeWordsPct,
		MinWordLength:       DefaultMinWordLength,
	}
}
