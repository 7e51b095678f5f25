package interfaces

import "context"

// Fetcher executes read and write requests against the upstream CMS.
// The query string is produced by the query builders and doubles as the
// cache key, so implementations must treat it as opaque and pass it through
// unmodified.
type Fetcher interface {
	// Get performs a GET against path (relative to the CMS API root) with the
	// pre-encoded query string and decodes the JSON response body into out.
	Get(ctx context.Context, path, rawQuery string, out any) error
	// Post sends payload as a JSON body. A nil out skips response decoding.
	Post(ctx context.Context, path string, payload, out any) error
}
