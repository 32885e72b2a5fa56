package models

import (
	"time"

	"github.com/google/uuid"
)

// Counter names a per-day usage column in usage_tracking.
type Counter string

// Usage counters
const (
	CounterDocuments  Counter = "documents_generated"
	CounterImages     Counter = "images_generated"
	CounterVideos     Counter = "videos_generated"
	CounterVoiceovers Counter = "voiceovers_generated"
)

// Counters lists every usage counter in column order.
var Counters = []Counter{CounterDocuments, CounterImages, CounterVideos, CounterVoiceovers}

// Valid reports whether c is a known usage_tracking column.
func (c Counter) Valid() bool {
	for _, known := range Counters {
		if c == known {
			return true
		}
	}
	return false
}

// UsageTrackingDB represents a usage_tracking row
type UsageTrackingDB struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	UserID              string    `json:"user_id" db:"user_id"`
	Date                string    `json:"date" db:"date"` // UTC calendar date, YYYY-MM-DD
	DocumentsGenerated  int       `json:"documents_generated" db:"documents_generated"`
	ImagesGenerated     int       `json:"images_generated" db:"images_generated"`
	VideosGenerated     int       `json:"videos_generated" db:"videos_generated"`
	VoiceoversGenerated int       `json:"voiceovers_generated" db:"voiceovers_generated"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// Get returns the value of counter c.
func (u *UsageTrackingDB) Get(c Counter) int {
	if u == nil {
		return 0
	}
	switch c {
	case CounterDocuments:
		return u.DocumentsGenerated
	case CounterImages:
		return u.ImagesGenerated
	case CounterVideos:
		return u.VideosGenerated
	case CounterVoiceovers:
		return u.VoiceoversGenerated
	}
	return 0
}

// Limits maps every tier to its daily limit per counter.
type Limits map[Tier]map[Counter]int

// DefaultLimits are the daily quotas applied per tier.
var DefaultLimits = Limits{
	TierFree: {
		CounterDocuments:  5,
		CounterImages:     3,
		CounterVideos:     1,
		CounterVoiceovers: 3,
	},
	TierStandard: {
		CounterDocuments:  50,
		CounterImages:     30,
		CounterVideos:     10,
		CounterVoiceovers: 30,
	},
	TierPremium: {
		CounterDocuments:  200,
		CounterImages:     100,
		CounterVideos:     30,
		CounterVoiceovers: 100,
	},
}

// For returns the daily limit of counter c for tier t. Unknown tiers fall back to free.
func (l Limits) For(t Tier, c Counter) int {
	perCounter, ok := l[t]
	if !ok {
		perCounter = l[TierFree]
	}
	return perCounter[c]
}

// CounterUsage is the used/limit pair of a single counter
// swagger:model CounterUsage
type CounterUsage struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}

// UsageResponse represents today's usage for the caller
// swagger:model UsageResponse
type UsageResponse struct {
	// UTC date the counters belong to
	// example: 2026-10-16
	Date string `json:"date"`

	// Caller tier
	// example: free
	Tier Tier `json:"tier"`

	// Usage per counter
	Usage map[Counter]CounterUsage `json:"usage"`
}

// Consumption records credits taken from one UTC day's quota. Refunds go back to that day.
type Consumption struct {
	Date    string
	Counter Counter
	N       int
}

// Portion returns c capped at n credits.
func (c Consumption) Portion(n int) Consumption {
	c.N = min(c.N, n)
	return c
}
