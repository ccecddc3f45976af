package screens

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/mrsinham/painplanner/internal/assessment"
	"github.com/mrsinham/painplanner/internal/labels"
	"github.com/mrsinham/painplanner/internal/report"
)

// unset is the select value for a rating that was skipped.
const unset = -1

func ratingOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, assessment.MaxRating+2)
	opts = append(opts, huh.NewOption(report.NotSpecified, unset))
	for n := 0; n <= assessment.MaxRating; n++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(n), n))
	}
	return opts
}

func ratingValue(r assessment.Rating) int {
	if v, ok := r.Value(); ok {
		return v
	}
	return unset
}

func toRating(v int) assessment.Rating {
	if v < 0 {
		return assessment.Unrated
	}
	return assessment.Rate(v)
}

// enumOptions offers a table's entries after a "Not specified" choice.
func enumOptions(t labels.Table) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(report.NotSpecified, "")}
	return append(opts, tableOptions(t)...)
}

func tableOptions(t labels.Table) []huh.Option[string] {
	src := t.Options()
	opts := make([]huh.Option[string], len(src))
	for i, o := range src {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}
	return opts
}

func triStateOptions() []huh.Option[assessment.TriState] {
	return []huh.Option[assessment.TriState]{
		huh.NewOption(report.NotSpecified, assessment.Unanswered),
		huh.NewOption("Yes", assessment.Yes),
		huh.NewOption("No", assessment.No),
	}
}

// cloneList copies a multi-select value; a cleared selection stays an
// empty list rather than nil.
func cloneList(v []string) []string {
	if v == nil {
		return []string{}
	}
	return slices.Clone(v)
}
