package analytics

import "fmt"

// ParseError reports a post whose timestamp could not be parsed. The engine
// fails fast on the first bad timestamp instead of letting invalid dates
// leak into the temporal buckets.
type ParseError struct {
	PostID    string
	Timestamp string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("post %s: unparseable timestamp %q: %v", e.PostID, e.Timestamp, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
