package sharefolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// This file persists portfolios in a folder, one JSONL file per portfolio, in
// a way that is human-readable and git-friendly. The first line of a file is
// the portfolio header (name, id, reporting currency), every following line
// is one holding.

const portfolioExt = ".jsonl"

// Store persists portfolios in a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// checkName rejects portfolio names that would escape the store directory or
// collide with the file layout.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("portfolio name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid portfolio name %q", name)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+portfolioExt)
}

// List returns the names of all portfolios in the store, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read portfolio directory %q: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), portfolioExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), portfolioExt))
	}
	sort.Strings(names)
	return names, nil
}

// Create creates a new empty portfolio. It fails if one with the same name
// already exists.
func (s *Store) Create(name string) (*Portfolio, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.path(name)); err == nil {
		return nil, fmt.Errorf("portfolio %q already exists", name)
	}
	p := NewPortfolio(name)
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a portfolio from the store.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil {
		return fmt.Errorf("could not delete portfolio %q: %w", name, err)
	}
	return nil
}

// Load reads and validates a portfolio. Every holding is validated at this
// boundary so malformed records never reach the valuation engine.
func (s *Store) Load(name string) (*Portfolio, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	filename := s.path(name)
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio %q: %w", name, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", filename, err)
	}
	p.name = name // the filename wins over the recorded header
	return p, nil
}

// Save writes the portfolio to its file, creating the store directory if
// needed.
func (s *Store) Save(p *Portfolio) error {
	if err := checkName(p.name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create portfolio directory %q: %w", s.dir, err)
	}
	filename := s.path(p.name)
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create portfolio file %q: %w", filename, err)
	}
	defer f.Close()

	if err := EncodePortfolio(f, p); err != nil {
		return fmt.Errorf("could not encode portfolio %q: %w", p.name, err)
	}
	return nil
}

// DecodePortfolio parses the JSONL representation of a portfolio.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	// to parse the json lines we use dedicated local structs with tag annotations.

	// jheader is the first line of a portfolio file.
	type jheader struct {
		Name     string `json:"name"`
		ID       string `json:"id"`
		Currency string `json:"currency"`
	}
	// jholding is one holding per line.
	type jholding struct {
		Ticker   string   `json:"ticker"`
		Shares   Quantity `json:"shares"`
		BuyPrice Money    `json:"buyPrice"`
		Sector   string   `json:"sector"`
	}

	p := &Portfolio{currency: GBPCurrency}
	scanner := bufio.NewScanner(r)
	first := true
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		if first {
			first = false
			var jh jheader
			if err := json.Unmarshal([]byte(txt), &jh); err != nil {
				return nil, fmt.Errorf("format error on line %d: %w", line, err)
			}
			id, err := uuid.Parse(jh.ID)
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: invalid portfolio id %q: %w", line, jh.ID, err)
			}
			p.name, p.id = jh.Name, id
			if jh.Currency != "" {
				p.currency = jh.Currency
			}
			continue
		}

		var jh jholding
		if err := json.Unmarshal([]byte(txt), &jh); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		h := Holding{
			Ticker:   strings.ToUpper(jh.Ticker),
			Shares:   jh.Shares,
			BuyPrice: jh.BuyPrice,
			Sector:   jh.Sector,
		}
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		p.holdings = append(p.holdings, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if first {
		return nil, fmt.Errorf("portfolio file is empty")
	}
	return p, nil
}

// EncodePortfolio writes the portfolio in its canonical JSONL form, fields in
// a stable order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	var header jsonObjectWriter
	header.Append("name", p.name)
	header.Append("id", p.id.String())
	header.Append("currency", p.currency)
	if err := writeJSONLine(w, &header); err != nil {
		return err
	}

	for _, h := range p.holdings {
		var line jsonObjectWriter
		line.Append("ticker", h.Ticker)
		line.Append("shares", h.Shares)
		line.Append("buyPrice", h.BuyPrice)
		line.Optional("sector", h.Sector)
		if err := writeJSONLine(w, &line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONLine(w io.Writer, o *jsonObjectWriter) error {
	b, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}
