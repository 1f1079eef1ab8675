package recordstore

import "net/http"

// Failure is returned by every client call that does not succeed. It reads
// the same whatever the cause: transport error, rejection or bad reply.
type Failure struct {
	Verb     string
	Resource string
	// Status is 0 when no response arrived.
	Status int
	// Detail is the server's error text, kept for logs.
	Detail string
	Err    error
}

func (f *Failure) Error() string {
	return "failed to " + f.Verb + " " + f.Resource
}

func (f *Failure) Unwrap() error { return f.Err }

// Unauthorized reports whether the server rejected the session.
func (f *Failure) Unauthorized() bool {
	return f.Status == http.StatusUnauthorized
}
