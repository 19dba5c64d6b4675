package hpack

import "fmt"

// EncodingFailure is raised when a primitive encoder fails at a
// position where prior bytes prohibit partial progress: the status
// pseudo-header didn't fit, or strict mode saw zero progress on an
// otherwise-empty buffer (spec.md §7). Stream-fatal at the HTTP/2
// layer.
type EncodingFailure struct {
	Reason string
}

func (e *EncodingFailure) Error() string {
	return fmt.Sprintf("hpack: encoding failure: %s", e.Reason)
}

// HeaderListOverflow is raised by the list-size validator when the
// summed header sizes exceed the peer's SETTINGS_MAX_HEADER_LIST_SIZE
// (spec.md §4.4, §7). Connection-level, not stream-level: no table
// mutation has occurred when this is returned.
type HeaderListOverflow struct {
	Limit uint32
	Total uint32
}

func (e *HeaderListOverflow) Error() string {
	return fmt.Sprintf("hpack: header list size %d exceeds max_header_list_size %d", e.Total, e.Limit)
}
