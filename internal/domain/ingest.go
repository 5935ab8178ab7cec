package domain

import "time"

// IngestResult describes what one ingest did to the registries and the ledger.
type IngestResult struct {
	BookID         *int64
	StoreProductID int64
	Inserted       bool
	FirstSnapshot  bool
	Snapshot       *OfferSnapshot
}

// SyncStats holds statistics about a feed sync.
type SyncStats struct {
	Feed      string
	Fetched   int
	Changed   int
	Unchanged int
	Errors    int
	Published int
	Duration  time.Duration
}

type FeedState struct {
	ID            int64     `db:"id"`
	Feed          string    `db:"feed"`
	LastSyncedAt  time.Time `db:"last_synced_at"`
	TotalIngested int64     `db:"total_ingested"`
	TotalChanges  int64     `db:"total_changes"`
}

// LedgerAppend is the outcome of offering one reading to the ledger.
type LedgerAppend struct {
	Inserted bool
	Previous *OfferSnapshot
	Snapshot *OfferSnapshot
}

// OfferChange is emitted after a committed ingest recorded a new snapshot.
type OfferChange struct {
	ISBN13         *string
	Store          string
	StoreProductID string
	URL            string
	FirstSeen      bool
	Snapshot       OfferSnapshot
}
