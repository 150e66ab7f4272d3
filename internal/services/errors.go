package services

// AttachmentError is a file count, size or type violation. It rejects the
// whole submission before any email is sent or record stored.
type AttachmentError struct {
	Reason string
}

func (e *AttachmentError) Error() string {
	return e.Reason
}

// DispatchError is a failed email send. The pipeline aborts and nothing is
// persisted; the caller surfaces a generic try-again message.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return "email dispatch failed: " + e.Err.Error()
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
