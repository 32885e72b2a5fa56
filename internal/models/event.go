package models

// GenerationEvent records a successful paid generation, including who consumed how many credits of which counter.
type GenerationEvent struct {
	EventID   string  `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64   `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the generation finished.
	UserID    string  `json:"user_id"`   // UserID is the Firebase uid of the caller.
	Tier      Tier    `json:"tier"`      // Tier is the caller tier at generation time.
	Counter   Counter `json:"counter"`   // Counter is the usage column that was consumed.
	Amount    int     `json:"amount"`    // Amount is the number of credits consumed.
	Kind      string  `json:"kind"`      // Kind describes the artifact, e.g. "presentation", "image" or "voiceover".
}
