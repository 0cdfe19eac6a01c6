package tz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"sigs.k8s.io/yaml"
)

// TzDatabase holds two independent lookup maps — by region name (e.g.
// "Europe/Oslo") and by short name (e.g. "CET") — sharing the same
// TzInfo values, per spec.md §3/§4.4.
//
// TzDatabase is mutable only during its population phase (the
// Load*/AddTzInfo calls); once populated, lookups are read-only and
// safe for concurrent readers without synchronization, matching
// spec.md §5's concurrency model. The mutex below serializes the
// population phase; lookups and listings also take it, as a read lock.
type TzDatabase struct {
	mu         sync.RWMutex
	regions    map[string]*TzInfo
	shortNames map[string]*TzInfo
	sources    map[string]string // region -> posix source, for DumpYAML
	generation uuid.UUID
}

// NewTzDatabase returns an empty database ready for population.
func NewTzDatabase() *TzDatabase {
	return &TzDatabase{
		regions:    make(map[string]*TzInfo),
		shortNames: make(map[string]*TzInfo),
		sources:    make(map[string]string),
	}
}

// AddTzInfo registers one (region, POSIX rule) entry, constructing a
// TzTable for the canonical DefaultStartYear+DefaultYearCount window,
// per spec.md §4.4. The entry's short name (its table's name: the
// POSIX standard-time abbreviation for a rule with DST transitions,
// "UTC±HH" for a fixed-offset rule) is registered alongside it in the
// short-name map; the first region to claim a given short name wins.
func (db *TzDatabase) AddTzInfo(region, posix string) error {
	info, err := NewTzInfoFromPosix(posix, DefaultStartYear, DefaultYearCount)
	if err != nil {
		return fmt.Errorf("tz: add_tz_info(%q): %w", region, err)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	db.regions[region] = &info
	db.sources[region] = posix
	if _, exists := db.shortNames[info.Name()]; !exists {
		db.shortNames[info.Name()] = &info
	}
	db.generation = newGeneration()
	return nil
}

// newGeneration is a thin seam so tests can substitute a
// deterministic generation if ever needed; by default it delegates
// to uuid.New.
var newGeneration = uuid.New

// Generation returns the id stamped the last time the database
// finished a population step, so operators can correlate "which
// snapshot is this process running" across log lines.
func (db *TzDatabase) Generation() uuid.UUID {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.generation
}

// Lookup returns the TzInfo registered under the given region name.
func (db *TzDatabase) Lookup(region string) (*TzInfo, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	info, ok := db.regions[region]
	if !ok {
		return nil, fmt.Errorf("%w: region %q", ErrNotFound, region)
	}
	return info, nil
}

// LookupShort returns the TzInfo registered under the given short
// (abbreviated) name.
func (db *TzDatabase) LookupShort(name string) (*TzInfo, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	info, ok := db.shortNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: short name %q", ErrNotFound, name)
	}
	return info, nil
}

// Regions returns every registered region name, sorted.
func (db *TzDatabase) Regions() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := maps.Keys(db.regions)
	slices.Sort(names)
	return names
}

// ShortNames returns every registered short name, sorted.
func (db *TzDatabase) ShortNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := maps.Keys(db.shortNames)
	slices.Sort(names)
	return names
}

// LoadFromISODB populates db from the compiled-in IANA snapshot
// (spec.md §6).
func (db *TzDatabase) LoadFromISODB() error {
	return db.loadText(strings.NewReader(embeddedSnapshot))
}

// LoadFromFile populates db from a text file of (region,
// posix_tz_string) lines (spec.md §6). A path ending in ".zst" is
// transparently decompressed through klauspost/compress/zstd before
// parsing, the one place this package touches a third-party codec on
// the way to disk.
func (db *TzDatabase) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tz: load_from_file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("tz: load_from_file: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return db.loadText(r)
}

// loadText parses the CSV-like "region,posix_tz_string" format
// shared by LoadFromISODB and LoadFromFile: blank lines and lines
// starting with '#' are ignored, everything else is split on the
// first comma (the POSIX rule field legitimately contains further
// commas, so this is not full CSV parsing).
func (db *TzDatabase) loadText(r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.IndexByte(line, ',')
		if i < 0 {
			return fmt.Errorf("%w: line %d: missing ',' separator", ErrParse, lineNo)
		}
		region, posix := strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
		if err := db.AddTzInfo(region, posix); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("tz: load: %w", err)
	}
	return nil
}

// yamlEntry is the on-disk shape DumpYAML/LoadYAML exchange: the
// source (region, POSIX rule) pairs rather than the expanded table,
// so a dump round-trips through AddTzInfo exactly like a text file
// would.
type yamlEntry struct {
	Region string `json:"region"`
	Posix  string `json:"posix"`
}

type yamlDoc struct {
	Entries []yamlEntry `json:"entries"`
}

// DumpYAML renders db's (region, POSIX rule) source entries as YAML,
// sorted by region, via sigs.k8s.io/yaml — the serialisation hook
// spec.md §9 asks for, given a concrete wire format.
func (db *TzDatabase) DumpYAML() ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	regions := maps.Keys(db.sources)
	slices.Sort(regions)
	doc := yamlDoc{Entries: make([]yamlEntry, 0, len(regions))}
	for _, region := range regions {
		doc.Entries = append(doc.Entries, yamlEntry{Region: region, Posix: db.sources[region]})
	}
	return yaml.Marshal(doc)
}

// LoadYAML populates db from YAML produced by DumpYAML.
func (db *TzDatabase) LoadYAML(data []byte) error {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	for _, e := range doc.Entries {
		if err := db.AddTzInfo(e.Region, e.Posix); err != nil {
			return err
		}
	}
	return nil
}
