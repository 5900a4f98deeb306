package cfg

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "PERFCORPUS"

// BindFlags registers every option flag on flagSet and binds it into v.
// Environment variables (PERFCORPUS_OUTPUT_DIR, PERFCORPUS_SEED, ...) are
// consulted for any flag not set on the command line.
func BindFlags(flagSet *pflag.FlagSet, v *viper.Viper) error {
	flagSet.StringP("output-dir", "o", "", "Directory receiving the generated corpus. Defaults to the directory containing the executable.")
	flagSet.String("backend", "dir", "Artifact backend: 'dir' (one file per class), 'bbolt' (single archive file) or 'memory' (dry run).")
	flagSet.String("archive-path", "", "bbolt archive location. Defaults to <output-dir>/corpus.db.")
	flagSet.Uint64("seed", 0, "Seed for violation sampling. 0 picks a random seed, which is recorded in the manifest.")
	flagSet.Bool("progress", false, "Show a progress bar on stderr.")
	flagSet.BoolP("verbose", "v", false, "Log every artifact written.")

	for _, name := range []string{"output-dir", "backend", "archive-path", "seed", "progress", "verbose"} {
		if err := v.BindPFlag(name, flagSet.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return nil
}

// Load reads configFile (if any) into v and decodes the merged settings.
// Explicit flags win over the config file, which wins over flag defaults.
func Load(v *viper.Viper, configFile string) (Options, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var o Options
	if err := v.Unmarshal(&o, viper.DecodeHook(DecodeHook())); err != nil {
		return Options{}, fmt.Errorf("decoding options: %w", err)
	}
	return o, nil
}
