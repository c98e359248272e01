package cli

import (
	"context"
	"encoding/json"
	"testing"

	"marine-guardian/internal/models"
	"marine-guardian/internal/store"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldenStats(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// seedStats writes rows straight through the store so statuses outside the
// known set can be stored
func seedStats(t *testing.T, dbPath string) {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, dbPath)
	require.NoError(t, err)

	rows := []models.SightingInput{
		{CommonName: "Dugong", Status: models.StatusVulnerable, Location: "Reef A"},
		{CommonName: "Manta Ray", Status: models.StatusVulnerable, Location: "Channel"},
		{CommonName: "Green Sea Turtle", Status: models.StatusEndangered, Location: "Beach"},
		{CommonName: "Clownfish", Status: models.StatusLeastConcern, Location: "Lagoon"},
		{CommonName: "Oarfish", Status: "Data Deficient", Location: "Open water"},
		{CommonName: "Sea Slug", Location: "Tide pool"},
	}
	for _, in := range rows {
		_, err := st.Create(ctx, in)
		require.NoError(t, err)
	}
}

func TestStatsGolden(t *testing.T) {
	dbPath := testDB(t)
	seedStats(t, dbPath)

	out, _, err := runCLI(t, "stats", "--db", dbPath, "--log-level", "disabled")
	require.NoError(t, err)

	goldenStats(t).Assert(t, "stats", []byte(out))
}

func TestStatsGoldenEmpty(t *testing.T) {
	out, _, err := runCLI(t, "stats", "--db", testDB(t), "--log-level", "disabled")
	require.NoError(t, err)

	goldenStats(t).Assert(t, "stats_empty", []byte(out))
}

func TestStatsJSON(t *testing.T) {
	dbPath := testDB(t)
	seedStats(t, dbPath)

	out, _, err := runCLI(t, "stats", "--db", dbPath, "--log-level", "disabled", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   StatsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 6, resp.Data.Total)
	require.Len(t, resp.Data.Counts, 5)
	assert.Equal(t, models.StatusCount{Status: models.StatusOther, Count: 2}, resp.Data.Counts[4])
}
