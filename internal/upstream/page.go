package upstream

// Page carries offset/limit pagination for a search call. Offset counts
// records, not pages; Limit of zero means "use the upstream default".
type Page struct {
	Offset int
	Limit  int
}

// Validate rejects negative offsets and limits above max. Out-of-range
// values are reported, not clamped, so callers see exactly what was asked.
func (p Page) Validate(max int) error {
	if p.Offset < 0 {
		return InvalidArgumentf("offset must be non-negative, got %d", p.Offset)
	}
	if p.Limit < 0 {
		return InvalidArgumentf("limit must be non-negative, got %d", p.Limit)
	}
	if max > 0 && p.Limit > max {
		return InvalidArgumentf("limit %d exceeds maximum %d", p.Limit, max)
	}
	return nil
}

// LimitOr returns the page limit, or def when the limit is unset.
func (p Page) LimitOr(def int) int {
	if p.Limit == 0 {
		return def
	}
	return p.Limit
}
