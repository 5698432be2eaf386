package menu

import "strconv"

// idAlloc hands out fallback widget ids for callers that omit one.
// Uniqueness only has to hold within one registry's lifetime, so a
// generation counter is enough; no global uniqueness involved.
type idAlloc struct {
	gen uint32
}

// next returns the next generated id, e.g. "widget-0001".
func (a *idAlloc) next(prefix string) string {
	a.gen++
	n := strconv.FormatUint(uint64(a.gen), 10)
	for len(n) < 4 {
		n = "0" + n
	}
	return prefix + "-" + n
}
