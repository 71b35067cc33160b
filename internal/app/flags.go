package app

import (
	"strconv"

	"github.com/spf13/pflag"

	"lifegrid/internal/config"
)

// Flags represents the command-line parameters of a run.
type Flags struct {
	ConfigPath  string
	Overrides   []string
	Alive       string
	Dead        string
	Workers     int
	LogLevel    string
	MetricsAddr string
}

// NewFlags returns Flags populated from the configuration defaults.
func NewFlags() *Flags {
	d := config.Default()
	return &Flags{
		Alive:       d.Alive,
		Dead:        d.Dead,
		Workers:     d.Workers,
		LogLevel:    d.LogLevel,
		MetricsAddr: d.MetricsAddr,
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML config file")
	fs.StringArrayVar(&f.Overrides, "set", f.Overrides, "config override in key=value form (repeatable)")
	fs.StringVar(&f.Alive, "alive", f.Alive, "character marking an alive cell")
	fs.StringVar(&f.Dead, "dead", f.Dead, "character marking a dead cell")
	fs.IntVar(&f.Workers, "workers", f.Workers, "goroutines computing each generation")
	fs.StringVar(&f.LogLevel, "log-level", f.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", f.MetricsAddr, "serve Prometheus metrics on this address while running")
}

// Config resolves the final configuration: defaults, then the config file,
// then --set overrides, then flags explicitly given on the command line.
func (f *Flags) Config(fs *pflag.FlagSet) (config.Config, error) {
	overrides, err := config.ParseOverrides(f.Overrides)
	if err != nil {
		return config.Config{}, err
	}
	explicit := map[string]string{
		"alive":        f.Alive,
		"dead":         f.Dead,
		"workers":      strconv.Itoa(f.Workers),
		"log-level":    f.LogLevel,
		"metrics-addr": f.MetricsAddr,
	}
	for flagName, value := range explicit {
		if fs.Changed(flagName) {
			overrides[configKey(flagName)] = value
		}
	}
	return config.Load(f.ConfigPath, overrides)
}

func configKey(flagName string) string {
	switch flagName {
	case "log-level":
		return "log_level"
	case "metrics-addr":
		return "metrics_addr"
	}
	return flagName
}
