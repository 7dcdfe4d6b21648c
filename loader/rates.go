package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/govalues/monet"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ratesFile holds worths as strings so that no digit is lost to floating point.
type ratesFile struct {
	Rates map[string]string `toml:"rates"`
}

// ReadRatesYAML reads a rate table from a YAML document with a rates map:
//
//	rates:
//	  USD: "1"
//	  CHF: 1.1
//
// Unquoted numbers are read by their literal text.
func ReadRatesYAML(r io.Reader) (*monet.RateTable, error) {
	var doc struct {
		Rates map[string]yaml.Node `yaml:"rates"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading rates: %w", err)
	}
	if doc.Rates == nil {
		return newRateTable(ratesFile{})
	}
	worths := make(map[string]string, len(doc.Rates))
	for code, node := range doc.Rates {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("reading rates: worth of %v at line %v is not a scalar", code, node.Line)
		}
		worths[code] = node.Value
	}
	return newRateTable(ratesFile{Rates: worths})
}

// ReadRatesTOML reads a rate table from a TOML document with a rates table:
//
//	[rates]
//	USD = "1"
//	CHF = "1.1"
//
// Worths must be strings, since TOML floats are binary.
func ReadRatesTOML(r io.Reader) (*monet.RateTable, error) {
	var doc ratesFile
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading rates: %w", err)
	}
	return newRateTable(doc)
}

func newRateTable(doc ratesFile) (*monet.RateTable, error) {
	if doc.Rates == nil {
		return nil, errors.New(`reading rates: missing table "rates"`)
	}
	t, err := monet.ParseRateTable(doc.Rates)
	if err != nil {
		return nil, fmt.Errorf("reading rates: %w", err)
	}
	return t, nil
}

// LoadRates reads a rate table from a .yaml, .yml or .toml file.
func LoadRates(path string) (*monet.RateTable, error) {
	var read func(io.Reader) (*monet.RateTable, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read = ReadRatesYAML
	case ".toml":
		read = ReadRatesTOML
	default:
		return nil, fmt.Errorf("loading %v: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading rates: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	return t, nil
}
