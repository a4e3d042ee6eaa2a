// Package cli wires the converter's command line surface to the pipeline.
package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/geoloc-model-export/internal/artifact"
	"github.com/couchcryptid/geoloc-model-export/internal/config"
	"github.com/couchcryptid/geoloc-model-export/internal/modelfile"
	"github.com/couchcryptid/geoloc-model-export/internal/observability"
	"github.com/couchcryptid/geoloc-model-export/internal/pipeline"
)

// NewRootCommand builds the model2json command.
func NewRootCommand(version string) *cobra.Command {
	var (
		coords bool
		weight bool
		wordID bool
	)

	cmd := &cobra.Command{
		Use:   "model2json <model_file> <output_dir>",
		Short: "Convert a geoloc language model to JSON documents",
		Long: `model2json streams a geoloc model file (plain or gzip-compressed) and
re-emits it as JSON: one document per word under <output_dir>/words/ plus a
model-wide summary at <output_dir>/model.json.

Word output is minimal by default; --coords, --weight and --word_id each
attach the corresponding optional field to the word documents.`,
		Args:         cobra.ExactArgs(2),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(args[0], args[1])
			if err != nil {
				return err
			}
			cfg.IncludeCoords = coords
			cfg.IncludeWeight = weight
			cfg.IncludeWordID = wordID
			return runConvert(cfg)
		},
	}

	cmd.Flags().BoolVar(&coords, "coords", false, "Add coords to word output files")
	cmd.Flags().BoolVar(&weight, "weight", false, "Add weight to word output files")
	cmd.Flags().BoolVar(&wordID, "word_id", false, "Add word id to word output files")

	return cmd
}

// Metrics register with the default Prometheus registry, which tolerates
// exactly one registration per process.
var metricsOnce = sync.OnceValue(observability.NewMetrics)

func runConvert(cfg *config.Config) error {
	logger := observability.NewLogger(cfg)
	metrics := metricsOnce()

	in, err := modelfile.Open(cfg.ModelFile)
	if err != nil {
		return err
	}
	defer in.Close()

	writer, err := artifact.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}

	asm := pipeline.NewAssembler(writer, pipeline.Options{
		IncludeCoords: cfg.IncludeCoords,
		IncludeWeight: cfg.IncludeWeight,
		IncludeWordID: cfg.IncludeWordID,
	}, logger, metrics)

	if err := pipeline.New(asm, logger, metrics).Run(in); err != nil {
		return fmt.Errorf("convert %s: %w", cfg.ModelFile, err)
	}
	return nil
}
