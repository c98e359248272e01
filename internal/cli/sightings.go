package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"marine-guardian/internal/models"

	"github.com/spf13/cobra"
)

// SightingFlags are the editable fields shared by add and update.
type SightingFlags struct {
	CommonName     string
	ScientificName string
	Status         string
	Location       string
}

func (sf *SightingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sf.CommonName, "common", "", "common name, e.g. Dugong")
	cmd.Flags().StringVar(&sf.ScientificName, "scientific", "", "scientific name, e.g. Dugong dugon")
	cmd.Flags().StringVar(&sf.Status, "status", "", fmt.Sprintf("conservation status (%v)", models.StatusLabels()))
	cmd.Flags().StringVar(&sf.Location, "location", "", "where the species was sighted")
}

func (sf *SightingFlags) input() models.SightingInput {
	return models.SightingInput{
		CommonName:     sf.CommonName,
		ScientificName: sf.ScientificName,
		Status:         models.ConservationStatus(sf.Status),
		Location:       sf.Location,
	}
}

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	SightingFlags
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new sighting",
		Example: `  marine-guardian add --common Dugong --scientific "Dugong dugon" \
    --status Vulnerable --location "Reef A"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, opts *AddOptions) error {
	service, err := opts.openService(cmd)
	if err != nil {
		return err
	}

	id, err := service.Add(cmd.Context(), opts.input())
	if err != nil {
		return serviceError("add sighting", err)
	}

	return opts.formatter(cmd).Success(map[string]int64{"id": id}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Added sighting %d (%s)\n", id, opts.CommonName)
		return err
	})
}

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Sort string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List recorded sightings",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Sort, "sort", "", "ordering (insertion|name|date); defaults to ui.default_sort")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	sortRaw := opts.Sort
	if sortRaw == "" {
		sortRaw = cfg.UI.DefaultSort
	}
	key, err := models.ParseSortKey(sortRaw)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --sort", err)
	}

	service, err := opts.serviceFor(cmd, cfg)
	if err != nil {
		return err
	}

	sightings, err := service.List(cmd.Context(), key)
	if err != nil {
		return serviceError("list sightings", err)
	}

	return opts.formatter(cmd).Success(sightings, func(w io.Writer) error {
		return writeSightingTable(w, sightings)
	})
}

func writeSightingTable(w io.Writer, sightings []models.Sighting) error {
	if len(sightings) == 0 {
		_, err := fmt.Fprintln(w, "No sightings recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMMON NAME\tSCIENTIFIC NAME\tSTATUS\tLOCATION\tDATE")
	for _, s := range sightings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.CommonName, s.ScientificName, s.ConservationStatus, s.LocationSighted, s.DateString())
	}
	return tw.Flush()
}

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	SightingFlags
}

// NewUpdateCommand creates the update command. Only the flags given on the
// command line replace stored values.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Change fields of an existing sighting",
		Example:       `  marine-guardian update 3 --location "Reef B"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, opts, args[0])
		},
	}
	opts.register(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, opts *UpdateOptions, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("common") && !flags.Changed("scientific") &&
		!flags.Changed("status") && !flags.Changed("location") {
		return NewExitError(ExitCommandError, "nothing to update: pass --common, --scientific, --status or --location")
	}

	service, err := opts.openService(cmd)
	if err != nil {
		return err
	}

	existing, err := service.Get(cmd.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return serviceError("load sighting", err)
	}

	in := existing.Input()
	if flags.Changed("common") {
		in.CommonName = opts.CommonName
	}
	if flags.Changed("scientific") {
		in.ScientificName = opts.ScientificName
	}
	if flags.Changed("status") {
		in.Status = models.ConservationStatus(opts.Status)
	}
	if flags.Changed("location") {
		in.Location = opts.Location
	}

	err = service.Update(cmd.Context(), id, in)
	if errors.Is(err, models.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return serviceError("update sighting", err)
	}

	return opts.formatter(cmd).Success(map[string]int64{"id": id}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Updated sighting %d\n", id)
		return err
	})
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Remove a sighting",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, rootOpts, args[0])
		},
	}
}

func runDelete(cmd *cobra.Command, opts *RootOptions, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	service, err := opts.openService(cmd)
	if err != nil {
		return err
	}

	err = service.Delete(cmd.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return serviceError("delete sighting", err)
	}

	return opts.formatter(cmd).Success(map[string]int64{"id": id}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Deleted sighting %d\n", id)
		return err
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid id %q: must be a positive integer", raw))
	}
	return id, nil
}
