package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw   string
		want  ConservationStatus
		known bool
	}{
		{"Least Concern", StatusLeastConcern, true},
		{"critically endangered", StatusCriticallyEndangered, true},
		{"  VULNERABLE ", StatusVulnerable, true},
		{"endangered", StatusEndangered, true},
		{"", "", true},
		{"extinct in the wild", "Extinct In The Wild", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortInsertion, key)

	key, err = ParseSortKey("Name")
	require.NoError(t, err)
	assert.Equal(t, SortName, key)

	key, err = ParseSortKey("date")
	require.NoError(t, err)
	assert.Equal(t, SortDate, key)

	_, err = ParseSortKey("size")
	assert.Error(t, err)
}

func TestSightingDateString(t *testing.T) {
	s := Sighting{DateRecorded: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-03-09", s.DateString())
	assert.Equal(t, "", Sighting{}.DateString())
}

func TestSightingInputValidate(t *testing.T) {
	valid := SightingInput{
		CommonName:     "Dugong",
		ScientificName: "Dugong dugon",
		Status:         StatusVulnerable,
		Location:       "Reef A",
	}
	require.NoError(t, valid.Validate())

	noStatus := valid
	noStatus.Status = ""
	require.NoError(t, noStatus.Validate())

	missing := SightingInput{Status: StatusEndangered}
	err := missing.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"Common Name is required", "Location is required"}, verr.Problems)

	badStatus := valid
	badStatus.Status = "Extinct"
	err = badStatus.Validate()
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Problems, 1)
	assert.Contains(t, verr.Problems[0], "Conservation Status must be one of")
}

func TestSightingInputNormalize(t *testing.T) {
	in := SightingInput{
		CommonName:     "  Green Turtle ",
		ScientificName: " Chelonia mydas",
		Status:         " endangered ",
		Location:       "Bay\t",
	}
	out := in.Normalize()
	assert.Equal(t, "Green Turtle", out.CommonName)
	assert.Equal(t, "Chelonia mydas", out.ScientificName)
	assert.Equal(t, StatusEndangered, out.Status)
	assert.Equal(t, "Bay", out.Location)

	unknown := SightingInput{Status: " rare "}.Normalize()
	assert.Equal(t, ConservationStatus("rare"), unknown.Status)
}

func TestBreakdown(t *testing.T) {
	t.Run("empty input zero-fills known statuses", func(t *testing.T) {
		got := Breakdown(map[string]int{})
		require.Len(t, got, len(Statuses))
		for i, c := range got {
			assert.Equal(t, Statuses[i], c.Status)
			assert.Zero(t, c.Count)
		}
		assert.Zero(t, Total(got))
		assert.Zero(t, MaxCount(got))
	})

	t.Run("unknown values fold into other", func(t *testing.T) {
		got := Breakdown(map[string]int{
			"Endangered": 2,
			"Vulnerable": 1,
			"rare":       3,
			"":           1,
		})
		require.Len(t, got, len(Statuses)+1)
		assert.Equal(t, StatusCount{Status: StatusLeastConcern, Count: 0}, got[0])
		assert.Equal(t, StatusCount{Status: StatusVulnerable, Count: 1}, got[1])
		assert.Equal(t, StatusCount{Status: StatusEndangered, Count: 2}, got[2])
		assert.Equal(t, StatusCount{Status: StatusCriticallyEndangered, Count: 0}, got[3])
		assert.Equal(t, StatusCount{Status: StatusOther, Count: 4}, got[4])
		assert.Equal(t, 7, Total(got))
		assert.Equal(t, 4, MaxCount(got))
	})
}
