// Package config describes the settings of one simulation run and loads them
// from defaults, .env files and YAML files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/sarchlab/vmsim/vm/replacement"
	"github.com/sarchlab/vmsim/vm/storage"
	"github.com/sarchlab/vmsim/workload"
)

// EnvPrefix starts the name of every environment key the configuration
// reads.
const EnvPrefix = "VMSIM_"

// StoreConfig selects the backing store.
type StoreConfig struct {
	Kind storage.Kind `json:"kind"`
	Path string       `json:"path,omitempty"`
}

// TraceConfig controls the fault trace database.
type TraceConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path,omitempty"`
}

// MonitorConfig controls the HTTP monitor.
type MonitorConfig struct {
	Enabled     bool `json:"enabled"`
	Port        int  `json:"port"`
	OpenBrowser bool `json:"openBrowser"`
}

// Config holds the settings of one run.
type Config struct {
	NumPages        int           `json:"numPages"`
	NumFrames       int           `json:"numFrames"`
	Policy          string        `json:"policy"`
	Program         string        `json:"program"`
	ScanMode        string        `json:"scanMode"`
	Seed            int64         `json:"seed"`
	CheckInvariants bool          `json:"checkInvariants"`
	Verbose         bool          `json:"verbose"`
	Store           StoreConfig   `json:"store"`
	Trace           TraceConfig   `json:"trace"`
	Monitor         MonitorConfig `json:"monitor"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Policy:   replacement.PolicyRoundRobin,
		ScanMode: replacement.ScanFrames.String(),
		Store: StoreConfig{
			Kind: storage.KindFile,
			Path: "myvirtualdisk",
		},
	}
}

// LoadFile overlays the YAML file at path on c. Unknown keys are errors.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %q", path)
	}

	err = yaml.UnmarshalStrict(raw, c)
	if err != nil {
		return errors.Wrapf(err, "failed to parse config file %q", path)
	}

	return nil
}

// LoadEnvFile overlays the VMSIM_ keys of the given .env files on c. Missing
// files are skipped.
func (c *Config) LoadEnvFile(filenames ...string) error {
	for _, name := range filenames {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			continue
		}

		env, err := godotenv.Read(name)
		if err != nil {
			return errors.Wrapf(err, "failed to read env file %q", name)
		}

		err = c.ApplyEnv(env)
		if err != nil {
			return errors.Wrapf(err, "invalid env file %q", name)
		}
	}

	return nil
}

// ApplyEnv overlays the VMSIM_ keys of env on c. Other keys are ignored.
func (c *Config) ApplyEnv(env map[string]string) error {
	var result *multierror.Error

	for key, value := range env {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}

		err := c.applyEnvKey(strings.TrimPrefix(key, EnvPrefix), value)
		if err != nil {
			result = multierror.Append(result,
				errors.Wrapf(err, "key %s", key))
		}
	}

	return result.ErrorOrNil()
}

func (c *Config) applyEnvKey(key, value string) error {
	var err error

	switch key {
	case "NUM_PAGES":
		c.NumPages, err = strconv.Atoi(value)
	case "NUM_FRAMES":
		c.NumFrames, err = strconv.Atoi(value)
	case "POLICY":
		c.Policy = value
	case "PROGRAM":
		c.Program = value
	case "SCAN_MODE":
		c.ScanMode = value
	case "SEED":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "CHECK_INVARIANTS":
		c.CheckInvariants, err = strconv.ParseBool(value)
	case "VERBOSE":
		c.Verbose, err = strconv.ParseBool(value)
	case "STORE_KIND":
		c.Store.Kind = storage.Kind(value)
	case "STORE_PATH":
		c.Store.Path = value
	case "TRACE":
		c.Trace.Enabled, err = strconv.ParseBool(value)
	case "TRACE_PATH":
		c.Trace.Path = value
	case "MONITOR":
		c.Monitor.Enabled, err = strconv.ParseBool(value)
	case "MONITOR_PORT":
		c.Monitor.Port, err = strconv.Atoi(value)
	case "OPEN_BROWSER":
		c.Monitor.OpenBrowser, err = strconv.ParseBool(value)
	default:
		err = fmt.Errorf("unknown setting")
	}

	return err
}

// Validate reports every problem of the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.NumPages <= 0 {
		result = multierror.Append(result,
			fmt.Errorf("number of pages must be positive, got %d", c.NumPages))
	}

	if c.NumFrames <= 0 {
		result = multierror.Append(result,
			fmt.Errorf("number of frames must be positive, got %d", c.NumFrames))
	}

	if _, ok := replacement.Canonical(c.Policy); !ok {
		result = multierror.Append(result,
			fmt.Errorf("invalid policy %q, choose from %s",
				c.Policy, strings.Join(replacement.List(), ", ")))
	}

	if _, err := workload.New(c.Program, c.Seed); err != nil {
		result = multierror.Append(result,
			fmt.Errorf("invalid program %q, choose from %s",
				c.Program, strings.Join(workload.List(), ", ")))
	}

	if _, err := replacement.ParseScanMode(c.ScanMode); err != nil {
		result = multierror.Append(result, err)
	}

	result = multierror.Append(result, c.validateStore()...)

	if c.Monitor.Port < 0 || c.Monitor.Port > 65535 {
		result = multierror.Append(result,
			fmt.Errorf("monitor port %d out of range", c.Monitor.Port))
	}

	return result.ErrorOrNil()
}

func (c Config) validateStore() []error {
	var errs []error

	if !storage.IsValidKind(c.Store.Kind) {
		errs = append(errs, fmt.Errorf("invalid store kind %q", c.Store.Kind))
	}

	if c.Store.Kind != storage.KindMemory && c.Store.Path == "" {
		errs = append(errs,
			fmt.Errorf("store kind %q requires a path", c.Store.Kind))
	}

	return errs
}

// Warnings lists settings that are valid but probably not intended.
func (c Config) Warnings() []string {
	var warnings []string

	if c.NumFrames > c.NumPages && c.NumPages > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d frames for %d pages, %d frames will never be used",
			c.NumFrames, c.NumPages, c.NumFrames-c.NumPages))
	}

	if c.ScanMode == replacement.ScanPageNumbers.String() &&
		c.NumFrames != c.NumPages {
		warnings = append(warnings,
			"page scan mode compares page numbers with frame indices "+
				"and may select a frame that does not exist")
	}

	return warnings
}
