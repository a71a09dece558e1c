// Package inquiry implements the triage pipeline for incoming leads:
// annotating the raw records, narrowing them with the console's filter
// controls, and moving them through the pending/reviewed/archived workflow.
package inquiry

import (
	"strings"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/annotation"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

// FilterAll is the sentinel value that disables a status or product filter.
const FilterAll = "all"

// Annotated pairs a stored inquiry with its derived annotation.
type Annotated struct {
	model.Inquiry
	Annotation annotation.Annotation `json:"annotation"`
}

// Filters holds the console's filter controls. Zero values and FilterAll are
// no-ops; the predicates combine with logical AND.
type Filters struct {
	Status  string
	Product string
	Search  string
}

// AnnotateAll derives the annotation for each inquiry in order.
func AnnotateAll(items []model.Inquiry) []Annotated {
	out := make([]Annotated, 0, len(items))
	for _, item := range items {
		out = append(out, Annotated{
			Inquiry:    item,
			Annotation: annotation.Extract(item.Message),
		})
	}
	return out
}

// Apply returns the subset of items matching every active filter, preserving
// the original relative order. The input is never mutated and the result is a
// fresh slice on every call.
//
// The search term is matched case-insensitively as a substring of the name,
// the company, or the raw message (not the cleaned one). It is deliberately
// not trimmed: a whitespace-only term matches literally.
func Apply(items []Annotated, f Filters) []Annotated {
	out := make([]Annotated, 0, len(items))
	search := strings.ToLower(f.Search)

	for _, item := range items {
		if f.Status != "" && f.Status != FilterAll && string(item.Status) != f.Status {
			continue
		}
		if f.Product != "" && f.Product != FilterAll {
			if item.Annotation.TargetProduct == nil || *item.Annotation.TargetProduct != f.Product {
				continue
			}
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(item Annotated, search string) bool {
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Company), search) ||
		strings.Contains(strings.ToLower(item.Message), search)
}

// ProductOptions returns the distinct non-nil target products across items in
// first-seen order. It is recomputed from the live collection on every call
// so the option set can never go stale.
func ProductOptions(items []Annotated) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		p := item.Annotation.TargetProduct
		if p == nil {
			continue
		}
		if _, ok := seen[*p]; ok {
			continue
		}
		seen[*p] = struct{}{}
		out = append(out, *p)
	}
	return out
}
