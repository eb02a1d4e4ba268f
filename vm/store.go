package vm

// A BackingStore keeps the content of every page in PageSize blocks addressed
// by page number.
type BackingStore interface {
	// NumBlocks returns the number of blocks the store can hold.
	NumBlocks() int

	// Read fills dst with the block of the given page.
	Read(page PageNum, dst []byte) error

	// Write persists src as the block of the given page.
	Write(page PageNum, src []byte) error
}
