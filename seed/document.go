package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/fold"
	"github.com/arloliu/mensura/transform"
)

// Document is the root of a seed file.
type Document struct {
	Dimensions []Dimension `yaml:"dimensions" json:"dimensions"`
	Categories []Category  `yaml:"categories" json:"categories"`
}

// Dimension declares a base dimension.
type Dimension struct {
	ID     string `yaml:"id" json:"id"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

// Category declares a measurement category or extends an existing one.
type Category struct {
	Name string `yaml:"name" json:"name"`
	// Dimensions maps dimension symbols to exponents. An empty map declares a
	// dimensionless category.
	Dimensions map[string]int `yaml:"dimensions" json:"dimensions"`
	// Base is the base unit. It is required for new categories and ignored
	// for categories that already exist.
	Base  *Unit  `yaml:"base,omitempty" json:"base,omitempty"`
	Units []Unit `yaml:"units" json:"units"`
}

// Unit declares a unit. Its to-base transform is Transform when set and
// x ↦ Scale·x + Offset otherwise.
type Unit struct {
	Name      string     `yaml:"name" json:"name"`
	Plural    string     `yaml:"plural,omitempty" json:"plural,omitempty"`
	Symbols   []string   `yaml:"symbols,omitempty" json:"symbols,omitempty"`
	Scale     float64    `yaml:"scale,omitempty" json:"scale,omitempty"`
	Offset    float64    `yaml:"offset,omitempty" json:"offset,omitempty"`
	Transform *Transform `yaml:"transform,omitempty" json:"transform,omitempty"`
}

// Transform holds the coefficients of x ↦ (A·x + B)/(C·x + D).
type Transform struct {
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
	C float64 `yaml:"c" json:"c"`
	D float64 `yaml:"d" json:"d"`
}

// ToBase returns the unit's to-base transform.
func (u Unit) ToBase() transform.Transform {
	if u.Transform != nil {
		return transform.New(u.Transform.A, u.Transform.B, u.Transform.C, u.Transform.D)
	}

	return transform.Affine(u.Scale, u.Offset)
}

// Parse decodes a YAML or JSON document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML or JSON document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSeed, err)
	}

	return &doc, nil
}

// Encode writes the document as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}

// Validate checks the document on its own, without a builder, and returns all
// problems found combined into one error.
func (d *Document) Validate() error {
	var err error

	ids := make(map[string]struct{}, len(d.Dimensions))
	symbols := make(map[rune]struct{}, len(d.Dimensions))
	for i, dim := range d.Dimensions {
		if strings.TrimSpace(dim.ID) == "" {
			err = multierr.Append(err, fmt.Errorf("dimensions[%d]: %w", i, errs.ErrEmptyTextID))
		} else {
			key := fold.Key(dim.ID)
			if _, dup := ids[key]; dup {
				err = multierr.Append(err, fmt.Errorf("dimensions[%d]: %w: id %q", i, errs.ErrDuplicateDimension, dim.ID))
			}
			ids[key] = struct{}{}
		}

		sym, symErr := parseSymbol(dim.Symbol)
		if symErr != nil {
			err = multierr.Append(err, fmt.Errorf("dimensions[%d]: %w", i, symErr))
			continue
		}
		if _, dup := symbols[sym]; dup {
			err = multierr.Append(err, fmt.Errorf("dimensions[%d]: %w: symbol %q", i, errs.ErrDuplicateDimension, dim.Symbol))
		}
		symbols[sym] = struct{}{}
	}

	names := make(map[string]struct{}, len(d.Categories))
	for i, c := range d.Categories {
		where := fmt.Sprintf("categories[%d]", i)
		if strings.TrimSpace(c.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("%s: %w", where, errs.ErrEmptyCategoryName))
		} else {
			where = fmt.Sprintf("category %q", c.Name)
			key := fold.Key(c.Name)
			if _, dup := names[key]; dup {
				err = multierr.Append(err, fmt.Errorf("%s: %w", where, errs.ErrDuplicateCategory))
			}
			names[key] = struct{}{}
		}

		for sym := range c.Dimensions {
			if _, symErr := parseSymbol(sym); symErr != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", where, symErr))
			}
		}

		err = multierr.Append(err, c.validateUnits(where))
	}

	return err
}

func (c Category) validateUnits(where string) error {
	var err error

	seenNames := make(map[string]struct{}, len(c.Units)+1)
	seenSymbols := make(map[string]struct{})
	check := func(u Unit, what string, base bool) {
		if strings.TrimSpace(u.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("%s %s: %w", where, what, errs.ErrEmptyUnitName))
			return
		}
		if _, dup := seenNames[u.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("%s unit %q: %w", where, u.Name, errs.ErrDuplicateUnit))
		}
		seenNames[u.Name] = struct{}{}

		for _, s := range u.Symbols {
			if _, dup := seenSymbols[s]; dup || s == "" {
				err = multierr.Append(err, fmt.Errorf("%s unit %q: %w: symbol %q", where, u.Name, errs.ErrDuplicateUnit, s))
			}
			seenSymbols[s] = struct{}{}
		}

		if !base && u.ToBase().IsSingular() {
			err = multierr.Append(err, fmt.Errorf("%s unit %q: %w", where, u.Name, errs.ErrSingularTransform))
		}
	}

	if c.Base != nil {
		check(*c.Base, "base unit", true)
	}
	for i, u := range c.Units {
		check(u, fmt.Sprintf("units[%d]", i), false)
	}

	return err
}

// Exponents converts the category's dimension map into an exponent vector.
func (c Category) Exponents() (dimension.Exponents, error) {
	powers := make(map[rune]int, len(c.Dimensions))
	for s, p := range c.Dimensions {
		sym, err := parseSymbol(s)
		if err != nil {
			return dimension.Exponents{}, err
		}
		powers[sym] += p
	}

	return dimension.NewExponents(powers), nil
}

func parseSymbol(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", errs.ErrInvalidSymbol, s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.ToUpper(r), nil
}
