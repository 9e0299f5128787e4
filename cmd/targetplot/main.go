package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/access-survey/targetplot/internal/types"
	"github.com/access-survey/targetplot/pkg/analysis"
	"github.com/access-survey/targetplot/pkg/catalog"
	"github.com/access-survey/targetplot/pkg/classify"
	"github.com/access-survey/targetplot/pkg/physics"
	"github.com/access-survey/targetplot/pkg/render"
	"github.com/access-survey/targetplot/pkg/utils"
)

const (
	// Application constants
	appName = "targetplot"
	version = "v1.0.0"
)

var (
	// Active configuration, loaded before any data command runs
	cfg *utils.Config

	// Flag overrides
	flagCatalog   string
	flagTargets   string
	flagOutput    string
	flagTitle     string
	flagAlbedo    float64
	flagChemistry bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "ACCESS survey target overview figures",
	Long: `targetplot renders the ACCESS survey target overview figure: every
transiting exoplanet from the exoplanet.eu catalog placed by equilibrium
temperature and planetary radius, with the survey's own targets highlighted
by observation status.

The tool reads the exoplanet.eu CSV export together with the survey's
target list and writes a single vector figure. The chemistry variant of the
figure additionally marks the transition temperatures between the important
molecules in exoplanet atmospheres.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		applyFlagOverrides(cmd)
		return nil
	},
}

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize targetplot configuration",
	Long: `Initialize the targetplot configuration. This writes the default
configuration file with the standard input/output paths, figure geometry
and albedo so individual values can be edited in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Initializing %s %s\n", appName, version)
		return utils.SaveConfig(utils.DefaultConfig())
	},
}

// plotCmd runs the full pipeline and writes the figure
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the target overview figure",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, targets, err := loadInputs()
		if err != nil {
			return err
		}

		points := classify.SelectTargets(rows, targets)

		opts := render.Options{
			Title:     cfg.Plot.Title,
			Width:     vg.Length(cfg.Plot.WidthInches) * vg.Inch,
			Height:    vg.Length(cfg.Plot.HeightInches) * vg.Inch,
			Chemistry: cfg.Plot.Chemistry,
		}
		if err := render.Save(rows, points, opts, cfg.Plot.Output); err != nil {
			return err
		}

		fmt.Printf("Wrote %s (%d target points highlighted)\n", cfg.Plot.Output, len(points))
		return nil
	},
}

// statsCmd summarizes the derived catalog
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize equilibrium temperatures of the transiting catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := catalog.LoadCatalog(cfg.Inputs.Catalog)
		if err != nil {
			return err
		}
		physics.AnnotateCatalog(rows, cfg.Physics.Albedo)

		s := analysis.Summarize(rows)
		fmt.Printf("Transiting planets: %d\n", s.Planets)
		fmt.Printf("Equilibrium temperature (K): mean %.1f  median %.1f  stddev %.1f\n",
			s.MeanEqTemp, s.MedianEqTemp, s.StdDevEqTemp)
		fmt.Printf("Equilibrium temperature range (K): %.1f - %.1f\n", s.MinEqTemp, s.MaxEqTemp)
		fmt.Printf("Mean planetary radius (R_Jup): %.2f\n", s.MeanRadius)
		return nil
	},
}

// loadInputs reads both tables and annotates the catalog with equilibrium
// temperatures
func loadInputs() ([]types.CatalogRow, []types.TargetRow, error) {
	rows, err := catalog.LoadCatalog(cfg.Inputs.Catalog)
	if err != nil {
		return nil, nil, err
	}
	physics.AnnotateCatalog(rows, cfg.Physics.Albedo)

	targets, err := catalog.LoadTargets(cfg.Inputs.Targets)
	if err != nil {
		return nil, nil, err
	}
	return rows, targets, nil
}

func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("catalog") {
		cfg.Inputs.Catalog = flagCatalog
	}
	if flags.Changed("targets") {
		cfg.Inputs.Targets = flagTargets
	}
	if flags.Changed("output") {
		cfg.Plot.Output = flagOutput
	}
	if flags.Changed("title") {
		cfg.Plot.Title = flagTitle
	}
	if flags.Changed("albedo") {
		cfg.Physics.Albedo = flagAlbedo
	}
	if flags.Changed("chemistry") {
		cfg.Plot.Chemistry = flagChemistry
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCatalog, "catalog", "", "path to the exoplanet.eu catalog CSV")
	pf.StringVar(&flagTargets, "targets", "", "path to the survey target list CSV")
	pf.StringVar(&flagOutput, "output", "", "output figure path")
	pf.StringVar(&flagTitle, "title", "", "figure title")
	pf.Float64Var(&flagAlbedo, "albedo", physics.DefaultAlbedo, "catalog-wide Bond albedo")
	pf.BoolVar(&flagChemistry, "chemistry", false, "overlay molecular transition temperatures")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
