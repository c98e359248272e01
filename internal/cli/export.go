package cli

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"marine-guardian/internal/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ValidEncodings are the document formats export can write.
var ValidEncodings = []string{"yaml", "json"}

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Encoding string
	Output   string
}

// ExportRecord is one sighting as written by export.
type ExportRecord struct {
	ID                 int64  `json:"id" yaml:"id"`
	CommonName         string `json:"common_name" yaml:"common_name"`
	ScientificName     string `json:"scientific_name,omitempty" yaml:"scientific_name,omitempty"`
	ConservationStatus string `json:"conservation_status,omitempty" yaml:"conservation_status,omitempty"`
	LocationSighted    string `json:"location_sighted" yaml:"location_sighted"`
	DateRecorded       string `json:"date_recorded" yaml:"date_recorded"`
}

// ExportDocument is the top-level export payload.
type ExportDocument struct {
	Count     int                  `json:"count" yaml:"count"`
	Sightings []ExportRecord       `json:"sightings" yaml:"sightings"`
	Summary   []models.StatusCount `json:"summary" yaml:"summary"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every sighting as a YAML or JSON document",
		Example: `  marine-guardian export > sightings.yaml
  marine-guardian export --encoding json --output sightings.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Encoding, "encoding", "e", "yaml", "document encoding (yaml|json)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "file to write (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	if !slices.Contains(ValidEncodings, opts.Encoding) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid encoding %q: must be one of %v", opts.Encoding, ValidEncodings))
	}

	service, err := opts.openService(cmd)
	if err != nil {
		return err
	}

	sightings, err := service.List(cmd.Context(), models.SortInsertion)
	if err != nil {
		return serviceError("export sightings", err)
	}
	summary, err := service.Statistics(cmd.Context())
	if err != nil {
		return serviceError("export sightings", err)
	}

	doc := NewExportDocument(sightings, summary)

	if opts.Output == "" {
		if err := EncodeDocument(cmd.OutOrStdout(), opts.Encoding, doc); err != nil {
			return WrapExitError(ExitFailure, "write export", err)
		}
		return nil
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return WrapExitError(ExitCommandError, "create output file", err)
	}
	if err := writeExportFile(f, opts.Encoding, doc); err != nil {
		return WrapExitError(ExitFailure, "write export", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d sightings to %s\n", doc.Count, opts.Output)
	return nil
}

// writeExportFile encodes doc into f and closes it, returning the close error
func writeExportFile(f io.WriteCloser, encoding string, doc ExportDocument) error {
	if err := EncodeDocument(f, encoding, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// NewExportDocument orders sightings oldest first by id.
func NewExportDocument(sightings []models.Sighting, summary []models.StatusCount) ExportDocument {
	records := make([]ExportRecord, 0, len(sightings))
	for _, s := range sightings {
		records = append(records, ExportRecord{
			ID:                 s.ID,
			CommonName:         s.CommonName,
			ScientificName:     s.ScientificName,
			ConservationStatus: string(s.ConservationStatus),
			LocationSighted:    s.LocationSighted,
			DateRecorded:       s.DateString(),
		})
	}
	slices.SortFunc(records, func(a, b ExportRecord) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return ExportDocument{
		Count:     len(records),
		Sightings: records,
		Summary:   summary,
	}
}

// EncodeDocument writes doc as "yaml" or "json".
func EncodeDocument(w io.Writer, encoding string, doc ExportDocument) error {
	switch encoding {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported encoding %q", encoding)
	}
}
