package backup

import "errors"

var (
	// ErrResolvePath indicates a directory in the chain is missing, a broken
	// link, not traversable or not a directory.
	ErrResolvePath = errors.New("resolve path failed")
	// ErrOpenSource indicates the database file could not be opened for reading.
	ErrOpenSource = errors.New("open source failed")
	// ErrOpenDestination indicates the backup file could not be created.
	ErrOpenDestination = errors.New("open destination failed")
	// ErrCopy indicates a read, write, flush or close failure during the copy.
	ErrCopy = errors.New("copy failed")
)
