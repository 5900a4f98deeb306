package main

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkg.jsn.cam/perfcorpus/internal/cfg"
	"pkg.jsn.cam/perfcorpus/pkg/corpus"
	"pkg.jsn.cam/perfcorpus/pkg/storage"
)

func newRootCmd() *cobra.Command {
	var configFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "perfcorpus",
		Short: "Generate a large mock orchestration codebase for analyzer performance tests",
		Long: `perfcorpus writes orchestrator classes with injected non-deterministic
calls, activity classes whose non-deterministic calls must not be flagged, a
summary of the expected analyzer findings and a manifest of every injected
call. With no flags it writes the stock 105-file corpus next to the binary.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&configFile, "config-file", "", "YAML config file overriding the corpus layout")
	if err := cfg.BindFlags(cmd.Flags(), v); err != nil {
		// Only fails on a programming error in flag registration.
		panic(err)
	}

	return cmd
}

func run(cmd *cobra.Command, opts cfg.Options) error {
	corpusCfg, err := opts.CorpusConfig()
	if err != nil {
		return err
	}

	kind, path, err := opts.Target()
	if err != nil {
		return err
	}

	gen, err := corpus.New(corpusCfg)
	if err != nil {
		return err
	}

	backend, err := storage.Open(kind, path)
	if err != nil {
		return err
	}
	defer backend.Close()

	if opts.Verbose {
		log.Printf("[CLI] Writing %d classes to %s backend %s (seed %d)", len(gen.Plan()), kind, path, gen.Seed())
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(gen.Plan()),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	res, err := gen.Generate(backend, func(class corpus.ClassSpec, size int) {
		if opts.Verbose {
			log.Printf("[GEN] Wrote %s (%s, %d methods)", class.FileName, humanize.Bytes(uint64(size)), class.MethodCount())
		}
		if bar != nil {
			bar.Add(1)
		}
	})
	if err != nil {
		return err
	}
	if bar != nil {
		bar.Finish()
	}

	if err := backend.Close(); err != nil {
		return fmt.Errorf("closing %s backend: %w", kind, err)
	}

	log.Printf("[CLI] Wrote %d artifacts (%s) to %s", len(res.Manifest.Files)+2, humanize.Bytes(uint64(res.Bytes)), path)
	fmt.Fprint(cmd.OutOrStdout(), res.Summary.Headline())

	return nil
}
