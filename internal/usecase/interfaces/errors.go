package interfaces

import "errors"

// ErrAlreadyExists is returned by conditional creates when the key is taken.
var ErrAlreadyExists = errors.New("document already exists")

// ErrLockNotObtained is returned by ILocker when another holder owns the key.
var ErrLockNotObtained = errors.New("lock not obtained")

// ErrStaleDocument is returned by IUnitOfWork when a guarded update finds the
// document in another state than the one it was read in.
var ErrStaleDocument = errors.New("document changed concurrently")

// ErrDocumentNotFound is returned by IUnitOfWork when an update or delete
// targets a missing document.
var ErrDocumentNotFound = errors.New("document not found")
