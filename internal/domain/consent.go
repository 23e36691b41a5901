package domain

import "time"

// ConsentPreferences is the tri-state cookie consent. Essential is always
// true; only analytics and marketing are user choices.
type ConsentPreferences struct {
	Essential bool `json:"essential"`
	Analytics bool `json:"analytics"`
	Marketing bool `json:"marketing"`
}

// ConsentRecord is what gets persisted under the consent storage key. Its
// presence on disk is what suppresses the banner on later loads.
type ConsentRecord struct {
	Preferences ConsentPreferences `json:"preferences"`
	Timestamp   time.Time          `json:"timestamp"`
}
