package pagefault

// Statistics counts what the resolver has done during a run.
type Statistics struct {
	// Faults is the number of faults resolved.
	Faults uint64 `json:"faults"`

	// StoreReads is the number of blocks read from the backing store.
	StoreReads uint64 `json:"store_reads"`

	// StoreWrites is the number of blocks written to the backing store.
	StoreWrites uint64 `json:"store_writes"`

	// Evictions is the number of pages evicted, dirty or clean.
	Evictions uint64 `json:"evictions"`

	// CleanEvictions is the number of evictions that skipped the flush.
	CleanEvictions uint64 `json:"clean_evictions"`

	// Upgrades is the number of faults that widened the permissions of a
	// resident page.
	Upgrades uint64 `json:"upgrades"`
}
