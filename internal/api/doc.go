// Package api is the data fetcher of the media browser. It issues GET requests
// against the categories and media endpoints, checks the status, decodes the
// JSON envelopes and classifies every failure as a transport, status or decode
// error. Failures are logged here, at the fetch boundary; callers decide how to
// degrade.
package api
