package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepPartnerEmployees(t *testing.T) {
	partnerOf := map[int64]int64{
		10: 1,
		11: 1,
		20: 2,
	}

	t.Run("mismatched partner dropped silently", func(t *testing.T) {
		kept := KeepPartnerEmployees(1, []int64{10, 20, 11}, partnerOf)
		assert.Equal(t, []int64{10, 11}, kept)
	})

	t.Run("unknown employees dropped", func(t *testing.T) {
		kept := KeepPartnerEmployees(1, []int64{10, 999}, partnerOf)
		assert.Equal(t, []int64{10}, kept)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		kept := KeepPartnerEmployees(1, []int64{10, 10, 11}, partnerOf)
		assert.Equal(t, []int64{10, 11}, kept)
	})

	t.Run("nothing matches", func(t *testing.T) {
		assert.Empty(t, KeepPartnerEmployees(3, []int64{10, 11, 20}, partnerOf))
	})

	t.Run("empty submission", func(t *testing.T) {
		assert.Empty(t, KeepPartnerEmployees(1, nil, partnerOf))
	})
}
