package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"marine-guardian/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewExportDocumentOrdersByID(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	sightings := []models.Sighting{
		{ID: 3, CommonName: "Vaquita", LocationSighted: "Gulf", DateRecorded: day},
		{ID: 1, CommonName: "Dugong", LocationSighted: "Reef A", DateRecorded: day},
	}

	doc := NewExportDocument(sightings, models.Breakdown(nil))

	assert.Equal(t, 2, doc.Count)
	assert.EqualValues(t, 1, doc.Sightings[0].ID)
	assert.EqualValues(t, 3, doc.Sightings[1].ID)
	assert.Equal(t, "2024-05-01", doc.Sightings[0].DateRecorded)
	assert.Len(t, doc.Summary, len(models.Statuses))
}

func TestEncodeDocumentYAML(t *testing.T) {
	doc := ExportDocument{
		Count: 1,
		Sightings: []ExportRecord{{
			ID:                 1,
			CommonName:         "Dugong",
			ConservationStatus: "Vulnerable",
			LocationSighted:    "Reef A",
			DateRecorded:       "2024-05-01",
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, "yaml", doc))
	assert.Contains(t, buf.String(), "common_name: Dugong")
	assert.NotContains(t, buf.String(), "scientific_name", "empty optional fields are omitted")

	var decoded ExportDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, doc.Sightings, decoded.Sightings)
}

func TestEncodeDocumentUnknown(t *testing.T) {
	err := EncodeDocument(&bytes.Buffer{}, "csv", ExportDocument{})
	assert.Error(t, err)
}

func TestExportCommandJSONToFile(t *testing.T) {
	dbPath := testDB(t)
	addDugong(t, dbPath)
	target := filepath.Join(t.TempDir(), "sightings.json")

	_, errOut, err := runCLI(t, "export", "--db", dbPath, "--log-level", "disabled",
		"--encoding", "json", "--output", target)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Exported 1 sightings")

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Sightings, 1)
	assert.Equal(t, "Dugong", doc.Sightings[0].CommonName)
	assert.Equal(t, "Vulnerable", doc.Sightings[0].ConservationStatus)
}

func TestExportCommandRejectsEncoding(t *testing.T) {
	_, _, err := runCLI(t, "export", "--db", testDB(t), "--encoding", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteExportFileReportsCloseError(t *testing.T) {
	doc := NewExportDocument(nil, models.Breakdown(nil))

	ok := &failingCloser{}
	require.NoError(t, writeExportFile(ok, "yaml", doc))
	assert.True(t, ok.closed)
	assert.Contains(t, ok.String(), "count: 0")

	broken := &failingCloser{closeErr: errors.New("disk full")}
	err := writeExportFile(broken, "json", doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	unknown := &failingCloser{}
	require.Error(t, writeExportFile(unknown, "csv", doc))
	assert.True(t, unknown.closed, "file is closed even when encoding fails")
}
