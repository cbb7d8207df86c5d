package analysis

import (
	"longstat/domain/anage"
	"longstat/domain/core"
)

// Group pairs a class label with its longevity observations
type Group struct {
	Name   string
	Values []float64
}

// classGroups extracts the raw longevity observations for every target
// class in canonical display order. A class with no usable observations
// still appears, with an empty value slice, so callers can name it when
// they reject the input.
func classGroups(ds *anage.Dataset) []Group {
	byClass := ds.LongevityByClass()
	targets := anage.TargetClasses()
	groups := make([]Group, 0, len(targets))
	for _, class := range targets {
		groups = append(groups, Group{Name: class.String(), Values: byClass[class]})
	}
	return groups
}

// pooled flattens groups into one slice, recording each value's group index
func pooled(groups []Group) (values []float64, groupIdx []int) {
	total := 0
	for _, g := range groups {
		total += len(g.Values)
	}
	values = make([]float64, 0, total)
	groupIdx = make([]int, 0, total)
	for gi, g := range groups {
		for _, v := range g.Values {
			values = append(values, v)
			groupIdx = append(groupIdx, gi)
		}
	}
	return values, groupIdx
}

// validateGroups enforces the minimum observation count per group before
// any inferential test runs
func validateGroups(groups []Group, need int) error {
	if len(groups) < 2 {
		return core.NewValidationError("groups", "at least two groups are required")
	}
	for _, g := range groups {
		if len(g.Values) < need {
			return core.NewInsufficientDataError(g.Name, len(g.Values), need)
		}
	}
	return nil
}
