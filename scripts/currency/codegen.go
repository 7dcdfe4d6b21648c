package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Units uint8
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %w", err))
	}

	// Convert the CSV records to a list of currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %w", err))
	}

	// Generate Go code from the currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %w", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records, there is no header
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 3
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	// Sort the CSV records by currency code
	slices.SortFunc(data, func(a, b []string) int {
		return strings.Compare(a[1], b[1])
	})

	// Convert the CSV records to currency objects
	currs := []currency{}
	for i, rec := range data {
		code := strings.TrimSpace(rec[1])
		if len(code) != 3 || strings.ToUpper(code) != code {
			return nil, fmt.Errorf("record %v: code %q must be 3 upper-case letters", i, code)
		}
		units, err := strconv.ParseUint(strings.TrimSpace(rec[2]), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("record %v: units: %w", i, err)
		}
		curr := currency{
			Name:  strings.TrimSpace(rec[0]),
			Code:  code,
			Units: uint8(units),
		}
		currs = append(currs, curr)
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
