// Package symbols loads the venue/ticker remapping table that aligns broker
// symbols with the symbols used in the accounting ledger.
package symbols

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"slices"
)

// ErrNotFound is returned when the symbol definitions file does not exist.
var ErrNotFound = errors.New("symbol file not found")

// expected CSV header
var header = []string{"symbol", "namespace", "ledger_symbol"}

// Map resolves broker symbols to ledger symbols. Read-only after Load.
type Map struct {
	entries map[string]string
}

// Load reads the symbol definitions CSV. Columns: symbol, namespace,
// ledger_symbol. A bare symbol is the broker identifier; when the same bare
// symbol is listed on multiple venues, those rows are keyed namespace:symbol
// instead, so that neither venue claims the bare lookup key.
func Load(path string) (*Map, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading symbol definitions %s: %w", path, err)
	}
	if len(rows) == 0 {
		return &Map{entries: map[string]string{}}, nil
	}
	if !slices.Equal(rows[0], header) {
		return nil, fmt.Errorf("unexpected columns in %s: %v", path, rows[0])
	}
	rows = rows[1:]

	// A bare symbol appearing on more than one venue is ambiguous.
	seen := map[string]int{}
	for _, row := range rows {
		seen[row[0]]++
	}

	entries := make(map[string]string, len(rows))
	for _, row := range rows {
		symbol, namespace, ledgerSymbol := row[0], row[1], row[2]

		key := symbol
		if seen[symbol] > 1 {
			key = namespace + ":" + symbol
		}

		value := ledgerSymbol
		if value == "" {
			value = symbol
		}

		entries[key] = value
	}

	return &Map{entries: entries}, nil
}

// Resolve returns the ledger symbol for a broker symbol. Symbols without a
// mapping pass through unchanged; most securities need no remapping.
func (m *Map) Resolve(symbol string) string {
	if mapped, ok := m.entries[symbol]; ok {
		return mapped
	}
	return symbol
}
