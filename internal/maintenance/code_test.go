package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var june2025 = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func TestNextCode(t *testing.T) {
	t.Run("first code of the year", func(t *testing.T) {
		code, seq := NextCode(june2025, nil, 0)
		assert.Equal(t, "25-1", code)
		assert.Equal(t, 1, seq)
	})

	t.Run("one past the highest existing", func(t *testing.T) {
		code, _ := NextCode(june2025, []string{"25-1", "25-2"}, 0)
		assert.Equal(t, "25-3", code)
	})

	t.Run("gap left by a deletion is not refilled", func(t *testing.T) {
		// 25-1, 25-2, 25-3 existed; 25-2 was deleted.
		code, _ := NextCode(june2025, []string{"25-1", "25-3"}, 3)
		assert.Equal(t, "25-4", code)
	})

	t.Run("deleted newest code is not reissued", func(t *testing.T) {
		// 25-1 and 25-2 were issued, then 25-2 was deleted.
		code, _ := NextCode(june2025, []string{"25-1"}, 2)
		assert.Equal(t, "25-3", code)
	})

	t.Run("other years and junk are ignored", func(t *testing.T) {
		code, _ := NextCode(june2025, []string{"24-40", "26-2", "abc", "25-x", "2025-9"}, 0)
		assert.Equal(t, "25-1", code)
	})

	t.Run("numeric not lexical max", func(t *testing.T) {
		code, _ := NextCode(june2025, []string{"25-9", "25-10", "25-2"}, 0)
		assert.Equal(t, "25-11", code)
	})
}

func TestParseCode(t *testing.T) {
	year, seq, ok := ParseCode("25-12")
	assert.True(t, ok)
	assert.Equal(t, "25", year)
	assert.Equal(t, 12, seq)

	for _, bad := range []string{"", "25", "25-", "-3", "5-3", "2025-3", "25-3a", "25--3"} {
		_, _, ok := ParseCode(bad)
		assert.False(t, ok, bad)
	}
}

func TestYearPrefix(t *testing.T) {
	assert.Equal(t, "05", YearPrefix(time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "25", YearPrefix(june2025))
}
