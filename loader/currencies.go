// Package loader reads currency definitions and rate tables from files.
//
// Currency definitions are read from CSV files with records of the form
// Name,Code,Units and no header:
//
//	"US Dollar",USD,2
//	"Imaginary Coin",IMC,4
//
// or from TOML files holding an array of tables named currency:
//
//	[[currency]]
//	name = "US Dollar"
//	code = "USD"
//	units = 2
//
// Rate tables are read from YAML or TOML files holding a rates map from
// currency codes to decimal worths:
//
//	rates:
//	  USD: "1"
//	  CHF: "1.1"
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/govalues/monet"
	"github.com/pelletier/go-toml/v2"
)

// ErrUnsupportedFormat is returned when a file extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadCurrenciesCSV reads currency definitions in the Name,Code,Units format.
// Every record must have exactly 3 fields.
func ReadCurrenciesCSV(r io.Reader) ([]monet.CurrencyInfo, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var infos []monet.CurrencyInfo
	for line := 1; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading currencies: %w", err)
		}
		ci, err := csvRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("reading currencies: record %v: %w", line, err)
		}
		infos = append(infos, ci)
	}
	return infos, nil
}

func csvRecord(rec []string) (monet.CurrencyInfo, error) {
	switch {
	case len(rec) < 1 || rec[0] == "":
		return monet.CurrencyInfo{}, errors.New("missing name (field 0)")
	case len(rec) < 2 || rec[1] == "":
		return monet.CurrencyInfo{}, errors.New("missing code (field 1)")
	case len(rec) < 3 || rec[2] == "":
		return monet.CurrencyInfo{}, errors.New("missing units (field 2)")
	case len(rec) > 3:
		return monet.CurrencyInfo{}, fmt.Errorf("got %v fields, want 3", len(rec))
	}
	units, err := strconv.ParseUint(strings.TrimSpace(rec[2]), 10, 8)
	if err != nil {
		return monet.CurrencyInfo{}, fmt.Errorf("malformed units (field 2): %w", err)
	}
	return monet.NewCurrencyInfo(rec[0], strings.TrimSpace(rec[1]), uint8(units))
}

type tomlCurrencies struct {
	Currency []tomlCurrency `toml:"currency"`
}

type tomlCurrency struct {
	Name  *string `toml:"name"`
	Code  *string `toml:"code"`
	Units *int64  `toml:"units"`
}

// ReadCurrenciesTOML reads currency definitions from an array of tables
// named currency, each with the fields name, code and units.
func ReadCurrenciesTOML(r io.Reader) ([]monet.CurrencyInfo, error) {
	var doc tomlCurrencies
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading currencies: %w", err)
	}
	if doc.Currency == nil {
		return nil, errors.New(`reading currencies: missing array of tables "currency"`)
	}
	infos := make([]monet.CurrencyInfo, 0, len(doc.Currency))
	for i, c := range doc.Currency {
		switch {
		case c.Name == nil:
			return nil, fmt.Errorf("reading currencies: missing field \"name\" at index %v", i)
		case c.Code == nil:
			return nil, fmt.Errorf("reading currencies: missing field \"code\" at index %v", i)
		case c.Units == nil:
			return nil, fmt.Errorf("reading currencies: missing field \"units\" at index %v", i)
		case *c.Units < 0 || *c.Units > math.MaxUint8:
			return nil, fmt.Errorf("reading currencies: units %v at index %v do not fit into uint8", *c.Units, i)
		}
		ci, err := monet.NewCurrencyInfo(*c.Name, *c.Code, uint8(*c.Units))
		if err != nil {
			return nil, fmt.Errorf("reading currencies: index %v: %w", i, err)
		}
		infos = append(infos, ci)
	}
	return infos, nil
}

// LoadCurrencies reads a registry from a .csv or .toml file.
//
// LoadCurrencies returns an error if the file cannot be read or defines
// a code twice.
func LoadCurrencies(path string) (*monet.Registry, error) {
	var read func(io.Reader) ([]monet.CurrencyInfo, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		read = ReadCurrenciesCSV
	case ".toml":
		read = ReadCurrenciesTOML
	default:
		return nil, fmt.Errorf("loading %v: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading currencies: %w", err)
	}
	defer func() { _ = f.Close() }()

	infos, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	r, err := monet.NewRegistry(infos...)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	return r, nil
}
