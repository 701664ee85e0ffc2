package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/tlvscope/tlvscope/engine"
	"github.com/tlvscope/tlvscope/log"
)

// Config is the optional CLI configuration file.
type Config struct {
	MaxInputLength int    `yaml:"max_input_length"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

func readConfig(file string) Config {
	config := Config{}
	if file == "" {
		return config
	}

	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open configuration file: %+v\n", err)
		os.Exit(3)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f, yaml.Strict())
	if err = dec.Decode(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse configuration file: %+v\n", err)
		os.Exit(3)
	}
	return config
}

func (c Config) apply() engine.Limits {
	if c.LogFormat == "json" {
		log.SetDefault(log.NewJson(os.Stderr))
	}
	if c.LogLevel != "" {
		level, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level %q\n", c.LogLevel)
			os.Exit(3)
		}
		log.Default().SetLevel(level)
	}
	return engine.Limits{MaxInputLength: c.MaxInputLength}
}
