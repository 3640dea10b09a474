package infrastructure

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opportunity-finder/domain"
)

func testInsert(title string) domain.InsertOpportunity {
	return domain.InsertOpportunity{
		Title:           title,
		Organization:    "Test Org",
		Description:     "Test description",
		Location:        "Test City",
		Country:         "Testland",
		Deadline:        "January 1, 2026",
		DeadlineStatus:  "open",
		Competitiveness: "low",
		Funding:         "free",
		Language:        domain.StringList{"English"},
		Duration:        "1 week",
		AgeRange:        "18-25",
		CareerArea:      domain.StringList{"STEM"},
		URL:             "https://example.com",
	}
}

func TestCreateAssignsIDAndDefaultsReopenDate(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateOpportunity(testInsert("First"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Nil(t, created.ReopenDate)

	got, err := store.GetOpportunityByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	store := NewMemoryStore()

	a, err := store.CreateOpportunity(testInsert("A"))
	require.NoError(t, err)
	b, err := store.CreateOpportunity(testInsert("B"))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	store := NewMemoryStore()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := store.CreateOpportunity(testInsert(title))
		require.NoError(t, err)
	}

	all, err := store.GetAllOpportunities()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, opp := range all {
		assert.Equal(t, titles[i], opp.Title)
	}
}

func TestGetByIDUnknownReturnsNil(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.GetOpportunityByID("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.CreateOpportunity(testInsert("Before"))
	require.NoError(t, err)

	title := "After"
	funding := "paid"
	updated, err := store.UpdateOpportunity(created.ID, domain.UpdateOpportunity{
		Title:   &title,
		Funding: &funding,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "paid", updated.Funding)
	assert.Equal(t, created.Organization, updated.Organization)

	unknown, err := store.UpdateOpportunity("missing", domain.UpdateOpportunity{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestDeleteTwice(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.CreateOpportunity(testInsert("Doomed"))
	require.NoError(t, err)

	first, err := store.DeleteOpportunity(created.ID)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.DeleteOpportunity(created.ID)
	require.NoError(t, err)
	assert.False(t, second)

	all, err := store.GetAllOpportunities()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCallersGetCopiesNotReferences(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.CreateOpportunity(testInsert("Immutable"))
	require.NoError(t, err)

	created.Language[0] = "Klingon"
	created.Title = "Mutated"

	got, err := store.GetOpportunityByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Immutable", got.Title)
	assert.Equal(t, domain.StringList{"English"}, got.Language)

	all, err := store.GetAllOpportunities()
	require.NoError(t, err)
	all[0].CareerArea[0] = "Mutated"

	again, err := store.GetOpportunityByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StringList{"STEM"}, again.CareerArea)
}

func TestVisitorCountStartsAtZero(t *testing.T) {
	store := NewMemoryStore()

	count, err := store.GetVisitorCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	next, err := store.IncrementVisitorCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}

func TestConcurrentVisitorIncrementsLoseNoUpdates(t *testing.T) {
	store := NewMemoryStore()

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = store.IncrementVisitorCount()
		}()
	}
	wg.Wait()

	count, err := store.GetVisitorCount()
	require.NoError(t, err)
	assert.Equal(t, int64(n), count)
}
