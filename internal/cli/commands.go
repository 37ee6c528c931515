package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/mocklocation"
)

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

type locationRow struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Address   string  `json:"address" yaml:"address"`
	District  string  `json:"district" yaml:"district"`
}

func locationTable(locs []valueobject.Location) ([]locationRow, table) {
	data := make([]locationRow, 0, len(locs))
	tbl := table{header: []string{"LATITUDE", "LONGITUDE", "ADDRESS", "DISTRICT"}}
	for _, loc := range locs {
		data = append(data, locationRow{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Address:   loc.Address,
			District:  loc.District,
		})
		tbl.rows = append(tbl.rows, []string{formatCoord(loc.Latitude), formatCoord(loc.Longitude), loc.Address, loc.District})
	}
	return data, tbl
}

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the seed locations simulated positions are drawn from.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			data, tbl := locationTable(mocklocation.Catalog())
			return render(cmd.OutOrStdout(), format, data, tbl)
		},
	}
}

func newGenerateCommand() *cobra.Command {
	var (
		count int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw random simulated locations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("%w: --count must be positive", errUsage)
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			gen := mocklocation.NewGenerator(rng)

			locs := make([]valueobject.Location, 0, count)
			for range count {
				locs = append(locs, gen.Generate())
			}
			data, tbl := locationTable(locs)
			return render(cmd.OutOrStdout(), format, data, tbl)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of locations to draw.")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible sequence.")
	return cmd
}

type regionResult struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Within    bool    `json:"within" yaml:"within"`
}

func newRegionCommand() *cobra.Command {
	region := &cobra.Command{
		Use:   "region",
		Short: "Check coordinates against the service region.",
	}

	var lat, lng float64
	contains := &cobra.Command{
		Use:   "contains",
		Short: "Report whether a point lies inside the region bounding box.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if !valueobject.NewCoordinate(lat, lng).IsValid() {
				return fmt.Errorf("%w: coordinates out of range", errUsage)
			}
			res := regionResult{Latitude: lat, Longitude: lng, Within: valueobject.IsWithinRegion(lat, lng)}
			return render(cmd.OutOrStdout(), format, res, table{
				header: []string{"LATITUDE", "LONGITUDE", "WITHIN"},
				rows:   [][]string{{formatCoord(lat), formatCoord(lng), strconv.FormatBool(res.Within)}},
			})
		},
	}
	contains.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees.")
	contains.Flags().Float64Var(&lng, "lng", 0, "Longitude in degrees.")
	_ = contains.MarkFlagRequired("lat")
	_ = contains.MarkFlagRequired("lng")

	region.AddCommand(contains)
	return region
}

type localeResult struct {
	IP          string `json:"ip" yaml:"ip"`
	Country     string `json:"country" yaml:"country"`
	CountryCode string `json:"country_code" yaml:"country_code"`
	IsDomestic  bool   `json:"is_domestic" yaml:"is_domestic"`
}

func newLocaleCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "locale <ip>",
		Short: "Classify a client IP as domestic or foreign.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if deps.Locale == nil {
				return errors.New("locale detection is not configured")
			}

			loc, err := deps.Locale.Detect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			res := localeResult{IP: args[0], Country: loc.Country, CountryCode: loc.CountryCode, IsDomestic: loc.IsDomestic}
			return render(cmd.OutOrStdout(), format, res, table{
				header: []string{"IP", "COUNTRY", "CODE", "DOMESTIC"},
				rows:   [][]string{{res.IP, res.Country, res.CountryCode, strconv.FormatBool(res.IsDomestic)}},
			})
		},
	}
}

func newMigrateCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the durable settings store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if deps.Migrate == nil {
				return errors.New("database is not configured")
			}
			if err := deps.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrating: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
