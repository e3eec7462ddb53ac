package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local)

	t.Run("Layout", func(t *testing.T) {
		employees, err := Generate(Config{RegularCount: 4, MatchingCount: 2, Now: now})
		require.NoError(t, err)
		require.Len(t, employees, 6)

		expected := []struct {
			name, gender string
		}{
			{"Name0", "Male"},
			{"Name1", "Female"},
			{"Name2", "Male"},
			{"Name3", "Female"},
			{"F0", "Male"},
			{"F1", "Male"},
		}
		for i, e := range employees {
			assert.Equal(t, expected[i].name, e.FullName)
			assert.Equal(t, expected[i].gender, e.Gender)
			assert.Equal(t, DefaultBirthDate, e.BirthDate)
			assert.Equal(t, 36, e.Age)
		}
	})

	t.Run("MatchingRecordsOnlyFPrefixedMales", func(t *testing.T) {
		employees, err := Generate(Config{RegularCount: 1000, MatchingCount: 100, Now: now})
		require.NoError(t, err)

		matching := 0
		for _, e := range employees {
			if e.Gender == "Male" && strings.HasPrefix(e.FullName, "F") {
				matching++
			}
		}
		assert.Equal(t, 100, matching)
	})

	t.Run("Empty", func(t *testing.T) {
		employees, err := Generate(Config{})
		require.NoError(t, err)
		assert.Empty(t, employees)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		_, err := Generate(Config{RegularCount: -1})
		assert.Error(t, err)
	})

	t.Run("BadBirthDate", func(t *testing.T) {
		_, err := Generate(Config{RegularCount: 1, BirthDate: "01/01/1990"})
		assert.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	assert.Equal(t, 1_000_100, conf.Total())
	assert.Equal(t, "1990-01-01", conf.BirthDate)
}
