package filler

import "fakeforge/internal/common"

// SelectorInfo is one row of the registry listing: a target type and the
// priorities of its selectors, in the order matching consults them.
type SelectorInfo struct {
	Type       string
	Count      int
	Priorities []int
}

// Selectors lists the registry contents, sorted by type label.
func (f *Filler) Selectors() []SelectorInfo {
	types := f.reg.Types()

	infos := make([]SelectorInfo, 0, len(types))
	for _, t := range types {
		sels := f.reg.Selectors(t)

		prios := make([]int, 0, len(sels))
		for _, s := range sels {
			prios = append(prios, s.Priority())
		}

		infos = append(infos, SelectorInfo{
			Type:       common.TypeLabel(t),
			Count:      len(sels),
			Priorities: prios,
		})
	}

	return infos
}
