// Package fetcher is the snapshot collaborator: it fetches each configured
// source's booking calendar and archives the raw HTML as a snapshot the
// parsing core consumes later.
//
// Transport failures are retried with exponential backoff; HTTP error
// statuses are terminal and recorded in the snapshot payload so the core
// can treat them as nothing-to-parse. Each source is independent — one
// source failing never aborts the others.
package fetcher
