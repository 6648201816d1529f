// Package locations ships the static lookup tables mapping human-readable
// location names to the integer codes the DataForSEO location_code parameter
// accepts. The tables are reference data for callers; the client itself
// never consults them.
package locations

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	_ "embed"
)

//go:embed data/us.csv
var usCSV []byte

//go:embed data/worldwide.csv
var worldwideCSV []byte

var (
	usOnce sync.Once
	usMap  map[string]int
	usErr  error

	worldOnce sync.Once
	worldMap  map[string]int
	worldErr  error
)

// US returns the United States table (country plus states), keyed by
// location name. The returned map is shared; callers must not mutate it.
func US() (map[string]int, error) {
	usOnce.Do(func() {
		usMap, usErr = parseTable("us", usCSV)
	})
	return usMap, usErr
}

// Worldwide returns the country-level table, keyed by location name. The
// returned map is shared; callers must not mutate it.
func Worldwide() (map[string]int, error) {
	worldOnce.Do(func() {
		worldMap, worldErr = parseTable("worldwide", worldwideCSV)
	})
	return worldMap, worldErr
}

// Code resolves a location name case-insensitively, checking the worldwide
// table first and the US table second.
func Code(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	for _, table := range []func() (map[string]int, error){Worldwide, US} {
		m, err := table()
		if err != nil {
			continue
		}
		if code, ok := m[name]; ok {
			return code, true
		}
		for k, code := range m {
			if strings.EqualFold(k, name) {
				return code, true
			}
		}
	}
	return 0, false
}

// parseTable reads a two-column location_name,location_code CSV with header.
func parseTable(table string, data []byte) (map[string]int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 2

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read %s header: %w", table, err)
	}

	out := make(map[string]int)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row: %w", table, err)
		}
		code, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("parse %s code for %q: %w", table, rec[0], err)
		}
		out[strings.TrimSpace(rec[0])] = code
	}
	return out, nil
}
