package domain

// PersistenceError wraps a storage failure that aborted a transaction. The
// transport layer renders its message with a 400 status so input-driven
// commit failures never surface as opaque 500s.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
