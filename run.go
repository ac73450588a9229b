package redk

import (
	"encoding/json"
	"os"

	"github.com/estatemap/redk/geocode"
	"github.com/pkg/errors"
)

// RunConfig holds the pipeline flags shared by every source's Main. Each Main
// embeds it so commandeer exposes the same set of flags on every subcommand.
type RunConfig struct {
	MinPrice      float64  `help:"Minimum acceptable unit price (inclusive)."`
	MaxPrice      float64  `help:"Maximum acceptable unit price (inclusive)."`
	BuildingTypes []string `help:"Comma separated allow-list of building types. Empty allows everything."`
	AliasFile     string   `help:"JSON file mapping canonical field names to alias lists, merged over the source's defaults."`
	Concurrency   int      `help:"Number of row-processing goroutines."`
	GeocodeURL    string   `help:"Geocoding service URL. When set, rows with an address but no coordinates are geocoded rather than skipped."`
	Output        string   `help:"File to write line-delimited JSON records to. '-' is stdout."`
	CellPrecision int      `help:"Geohash precision for an extra per-record cell key. 0 disables."`
}

// NewRunConfig returns a RunConfig with the default bounds, sequential
// processing, and stdout output.
func NewRunConfig() RunConfig {
	return RunConfig{
		MinPrice:    DefaultMinPrice,
		MaxPrice:    DefaultMaxPrice,
		Concurrency: 1,
		Output:      "-",
	}
}

// PipelineOptions converts the config into pipeline options over the given
// base alias set.
func (c RunConfig) PipelineOptions(base AliasConfig) ([]Option, error) {
	if base == nil {
		base = DefaultAliases()
	}
	aliases := base
	if c.AliasFile != "" {
		over, err := LoadAliasFile(c.AliasFile)
		if err != nil {
			return nil, err
		}
		aliases = base.Merge(over)
	}
	opts := []Option{
		OptAliases(aliases),
		OptFilter(Filter{MinPrice: c.MinPrice, MaxPrice: c.MaxPrice, BuildingTypes: c.BuildingTypes}),
		OptConcurrency(c.Concurrency),
	}
	if c.GeocodeURL != "" {
		opts = append(opts, OptGeocoder(geocode.NewClient(c.GeocodeURL)))
	}
	return opts, nil
}

// LoadAliasFile reads a JSON object mapping canonical field names to alias
// lists, e.g. {"price": ["單價", "unit_price"]}.
func LoadAliasFile(path string) (AliasConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening alias file")
	}
	defer f.Close()
	raw := map[string][]string{}
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding alias file")
	}
	cfg := make(AliasConfig, len(raw))
	for name, keys := range raw {
		field := Field(name)
		known := false
		for _, f := range Fields {
			if f == field {
				known = true
				break
			}
		}
		if !known {
			return nil, errors.Errorf("unknown canonical field %q in alias file", name)
		}
		cfg[field] = keys
	}
	return cfg, nil
}
