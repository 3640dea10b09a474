package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOpportunities() []Opportunity {
	return []Opportunity{
		{
			ID:              "1",
			Title:           "Amazon Conservation Volunteer Program",
			Organization:    "Ecuador Wildlife Foundation",
			Description:     "Help protect the Amazon rainforest.",
			Country:         "Ecuador",
			Funding:         "free",
			Competitiveness: "low",
			Language:        StringList{"Spanish", "English"},
			CareerArea:      StringList{"Social Impact", "Education"},
		},
		{
			ID:              "2",
			Title:           "Women in STEM Summer Program",
			Organization:    "MIT TechWomen Initiative",
			Description:     "Hands-on coding and engineering workshops.",
			Country:         "USA",
			Funding:         "fully-funded",
			Competitiveness: "medium",
			Language:        StringList{"English"},
			CareerArea:      StringList{"STEM", "Education"},
		},
		{
			ID:              "3",
			Title:           "Creative Arts Intensive Workshop",
			Organization:    "International Arts Foundation",
			Description:     "Explore various artistic mediums.",
			Country:         "Spain",
			Funding:         "paid",
			Competitiveness: "medium",
			Language:        StringList{"English"},
			CareerArea:      StringList{"Arts"},
		},
	}
}

func ids(opps []Opportunity) []string {
	out := make([]string, 0, len(opps))
	for _, o := range opps {
		out = append(out, o.ID)
	}
	return out
}

func TestQueryEmptyReturnsEverythingInOrder(t *testing.T) {
	opps := sampleOpportunities()
	got := Query{}.Apply(opps)
	assert.Equal(t, ids(opps), ids(got))
}

func TestQueryOutputIsSubsequence(t *testing.T) {
	opps := sampleOpportunities()
	got := Query{Competitiveness: []string{"Medium"}}.Apply(opps)
	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestQuerySearchIsCaseInsensitive(t *testing.T) {
	opps := sampleOpportunities()

	upper := Query{Search: "AMAZON"}.Apply(opps)
	lower := Query{Search: "amazon"}.Apply(opps)

	require.Len(t, upper, 1)
	assert.Equal(t, ids(upper), ids(lower))
	assert.Equal(t, "1", upper[0].ID)
}

func TestQuerySearchCoversOrganizationAndDescription(t *testing.T) {
	opps := sampleOpportunities()

	byOrg := Query{Search: "techwomen"}.Apply(opps)
	require.Len(t, byOrg, 1)
	assert.Equal(t, "2", byOrg[0].ID)

	byDesc := Query{Search: "artistic mediums"}.Apply(opps)
	require.Len(t, byDesc, 1)
	assert.Equal(t, "3", byDesc[0].ID)
}

func TestQueryFundingLabelNormalization(t *testing.T) {
	opps := sampleOpportunities()

	got := Query{Funding: []string{"Fully Funded"}}.Apply(opps)
	require.Len(t, got, 1)
	assert.Equal(t, "fully-funded", got[0].Funding)
}

func TestQueryLanguageBothMatchesMultilingualOnly(t *testing.T) {
	opps := sampleOpportunities()

	got := Query{Languages: []string{"Both"}}.Apply(opps)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestQueryLanguageLiteralMembership(t *testing.T) {
	opps := sampleOpportunities()

	got := Query{Languages: []string{"Spanish"}}.Apply(opps)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestQueryCareerAreaIsCaseSensitive(t *testing.T) {
	opps := []Opportunity{{ID: "x", CareerArea: StringList{"stem"}}}

	assert.Empty(t, Query{CareerAreas: []string{"STEM"}}.Apply(opps))
	assert.Len(t, Query{CareerAreas: []string{"stem"}}.Apply(opps), 1)
}

func TestQueryCountriesImposeNoConstraint(t *testing.T) {
	opps := sampleOpportunities()

	got := Query{Countries: []string{"Nowhere"}}.Apply(opps)
	assert.Equal(t, ids(opps), ids(got))
}

func TestQueryCategoriesCombineWithAnd(t *testing.T) {
	opps := sampleOpportunities()

	got := Query{
		Funding:     []string{"Free"},
		CareerAreas: []string{"Social Impact"},
	}.Apply(opps)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Same funding but a career area only present elsewhere: no hit.
	assert.Empty(t, Query{
		Funding:     []string{"Free"},
		CareerAreas: []string{"Arts"},
	}.Apply(opps))
}

func TestQuerySelectionsWithinCategoryCombineWithOr(t *testing.T) {
	opps := sampleOpportunities()

	got := Query{Funding: []string{"Free", "Paid"}}.Apply(opps)
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestListFilterMembership(t *testing.T) {
	opps := sampleOpportunities()

	got := ListFilter{Funding: []string{"free", "paid"}}.Apply(opps)
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = ListFilter{Countries: []string{"Ecuador"}}.Apply(opps)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = ListFilter{Languages: []string{"Spanish"}}.Apply(opps)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = ListFilter{CareerAreas: []string{"Education"}}.Apply(opps)
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestListFilterDoesNotNormalizeLabels(t *testing.T) {
	opps := sampleOpportunities()

	// The listing filter compares raw strings: the display label
	// "Fully Funded" never equals the stored "fully-funded".
	assert.Empty(t, ListFilter{Funding: []string{"Fully Funded"}}.Apply(opps))
}

func TestListFilterHasNoBothSynthesis(t *testing.T) {
	opps := sampleOpportunities()

	assert.Empty(t, ListFilter{Languages: []string{"Both"}}.Apply(opps))
}

func TestNormalizeFacetLabel(t *testing.T) {
	assert.Equal(t, "fully-funded", NormalizeFacetLabel("Fully Funded"))
	assert.Equal(t, "free", NormalizeFacetLabel("Free"))
	assert.Equal(t, "a-b-c", NormalizeFacetLabel("A B C"))
}
