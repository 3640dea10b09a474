package domain

import "strings"

// Query is the full search/filter contract: free-text search plus
// facet selections. Categories combine with AND; selections inside a
// category combine with OR. An empty category imposes no constraint.
type Query struct {
	Search          string
	Funding         []string
	Competitiveness []string
	Languages       []string
	Countries       []string
	CareerAreas     []string
}

// NormalizeFacetLabel converts a display label to its stored enum
// form: "Fully Funded" becomes "fully-funded".
func NormalizeFacetLabel(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}

// Apply returns the records matching the query, keeping their original
// relative order. The input slice is never modified.
func (q Query) Apply(opportunities []Opportunity) []Opportunity {
	out := make([]Opportunity, 0, len(opportunities))
	for _, opp := range opportunities {
		if q.Matches(opp) {
			out = append(out, opp)
		}
	}
	return out
}

// Matches reports whether a single record passes every active
// predicate. Countries selections are accepted for parity with the
// listing query but impose no constraint here; country narrowing
// happens only in the listing endpoint's ListFilter.
func (q Query) Matches(opp Opportunity) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(opp.Title), needle) &&
			!strings.Contains(strings.ToLower(opp.Organization), needle) &&
			!strings.Contains(strings.ToLower(opp.Description), needle) {
			return false
		}
	}

	if len(q.Funding) > 0 {
		match := false
		for _, f := range q.Funding {
			if NormalizeFacetLabel(f) == opp.Funding {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	if len(q.Competitiveness) > 0 {
		match := false
		for _, c := range q.Competitiveness {
			if strings.ToLower(c) == opp.Competitiveness {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	if len(q.Languages) > 0 {
		match := false
		for _, l := range q.Languages {
			// "Both" is a synthetic option for multilingual programs.
			if l == "Both" && len(opp.Language) > 1 {
				match = true
				break
			}
			if contains(opp.Language, l) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	if len(q.CareerAreas) > 0 {
		// Career areas compare case-sensitively, unlike the lowercased
		// comparisons above. Normalizing would change which records
		// match, so the asymmetry stays.
		match := false
		for _, c := range q.CareerAreas {
			if contains(opp.CareerArea, c) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	return true
}

// ListFilter is the reduced filter applied by the listing endpoint:
// independent exact-membership tests per field, no search text and no
// "Both" synthesis.
type ListFilter struct {
	Funding         []string
	Competitiveness []string
	Languages       []string
	Countries       []string
	CareerAreas     []string
}

// Apply returns the records passing every non-empty membership test,
// in their original relative order.
func (f ListFilter) Apply(opportunities []Opportunity) []Opportunity {
	out := make([]Opportunity, 0, len(opportunities))
	for _, opp := range opportunities {
		if f.matches(opp) {
			out = append(out, opp)
		}
	}
	return out
}

func (f ListFilter) matches(opp Opportunity) bool {
	if len(f.Funding) > 0 && !containsString(f.Funding, opp.Funding) {
		return false
	}
	if len(f.Competitiveness) > 0 && !containsString(f.Competitiveness, opp.Competitiveness) {
		return false
	}
	if len(f.Languages) > 0 && !intersects(opp.Language, f.Languages) {
		return false
	}
	if len(f.Countries) > 0 && !containsString(f.Countries, opp.Country) {
		return false
	}
	if len(f.CareerAreas) > 0 && !intersects(opp.CareerArea, f.CareerAreas) {
		return false
	}
	return true
}

func contains(list StringList, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func intersects(list StringList, values []string) bool {
	for _, v := range values {
		if contains(list, v) {
			return true
		}
	}
	return false
}
