package hpack

import "strconv"

// unboundedHeaderListSize is the sentinel for "peer did not send
// SETTINGS_MAX_HEADER_LIST_SIZE, or sent the default": validation is
// skipped entirely in that case (spec.md §4.4).
const unboundedHeaderListSize = 0

// validateTotalSize sums name_len+value_len+32 across the optional
// status pseudo-header and every header the producer yields, and
// compares it to limit. Runs before any table mutation, so a
// rejected block leaves dynamic-table state untouched.
func validateTotalSize(limit uint32, statusCode int, hasStatus bool, headers []Header) error {
	if limit == unboundedHeaderListSize {
		return nil
	}

	var total uint32
	if hasStatus {
		total += entrySize(":status", strconv.Itoa(statusCode))
	}
	for _, h := range headers {
		total += entrySize(h.Name, h.Value)
	}

	if total > limit {
		return &HeaderListOverflow{Limit: limit, Total: total}
	}
	return nil
}
