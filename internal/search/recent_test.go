package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentSearches_MostRecentFirst(t *testing.T) {
	r := NewRecentSearches()
	r.Add("emi")
	r.Add("crop")
	r.Add("speech")

	assert.Equal(t, []string{"speech", "crop", "emi"}, r.Get())
}

func TestRecentSearches_Dedup(t *testing.T) {
	r := NewRecentSearches()
	r.Add("emi")
	r.Add("emi")
	assert.Equal(t, []string{"emi"}, r.Get())

	r.Add("crop")
	r.Add("emi")
	assert.Equal(t, []string{"emi", "crop"}, r.Get())
}

func TestRecentSearches_IgnoresBlank(t *testing.T) {
	r := NewRecentSearches()
	r.Add("")
	r.Add("   ")
	assert.Equal(t, 0, r.Len())

	r.Add("  emi  ")
	assert.Equal(t, []string{"emi"}, r.Get())
}

func TestRecentSearches_Bounded(t *testing.T) {
	r := NewRecentSearches()
	for i := 0; i < 25; i++ {
		r.Add(fmt.Sprintf("query-%d", i))
		assert.LessOrEqual(t, r.Len(), MaxRecentSearches)
	}

	got := r.Get()
	assert.Len(t, got, MaxRecentSearches)
	assert.Equal(t, "query-24", got[0])
	assert.Equal(t, "query-15", got[MaxRecentSearches-1])
}

func TestRecentSearches_GetReturnsCopy(t *testing.T) {
	r := NewRecentSearches()
	r.Add("emi")

	snapshot := r.Get()
	snapshot[0] = "changed"

	assert.Equal(t, []string{"emi"}, r.Get())
}

func TestRecentSearches_Clear(t *testing.T) {
	r := NewRecentSearches()
	r.Add("emi")
	r.Add("crop")
	r.Clear()

	assert.Empty(t, r.Get())

	r.Add("speech")
	assert.Equal(t, []string{"speech"}, r.Get())
}

func TestRecentSearches_Independent(t *testing.T) {
	a, b := NewRecentSearches(), NewRecentSearches()
	a.Add("emi")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}
