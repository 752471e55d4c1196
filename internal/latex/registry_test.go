package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_FirstSeenOrder(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 1, r.Number("keyB"))
	assert.Equal(t, 2, r.Number("keyA"))
	assert.Equal(t, 1, r.Number("keyB"))
	assert.Equal(t, 2, r.Len())

	n, ok := r.Lookup("keyA")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	_, ok = r.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len(), "lookup must not assign")
}

func TestRegistry_ResetRestartsNumbering(t *testing.T) {
	r := NewRegistry()
	r.Number("a")
	r.Number("b")
	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, r.Number("b"))
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var r *Registry
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Entries())
}

func TestCatalog_OrderAndLookup(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, 10, c.Len())
	entries := c.Entries()
	assert.Equal(t, "wertz2011space", entries[0].Key)
	assert.Equal(t, "silverstein2018gaussian", entries[len(entries)-1].Key)

	ref, ok := c.Lookup("izzo2019machine")
	assert.True(t, ok)
	assert.Contains(t, ref, "Acta Astronautica")
	_, ok = c.Lookup("unknown2020")
	assert.False(t, ok)
}

func TestNewCatalog_IgnoresDuplicateKeys(t *testing.T) {
	c := NewCatalog([]CatalogEntry{{"a", "first"}, {"b", "second"}, {"a", "again"}})
	assert.Equal(t, 2, c.Len())
	ref, _ := c.Lookup("a")
	assert.Equal(t, "first", ref)
}
