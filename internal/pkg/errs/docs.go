// Package errs provides the typed errors shared by the domain, the use cases and
// the adapters of the orders service.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsRequired) with a struct carrying the offending parameter and an
// optional cause. Callers classify failures with errors.Is against the sentinel
// and extract details with errors.As against the struct:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // respond 404
//	}
//
// Only the HTTP adapter translates these errors into status codes.
package errs
