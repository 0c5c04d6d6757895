package seed

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/mensura/catalog"
	"github.com/arloliu/mensura/errs"
)

// Apply validates the document and defines its contents in b.
//
// Dimensions already present with the same symbol and units already present
// with an equal transform are skipped with a warning. Existing categories must
// have the exponents the document declares.
//
// Apply stops at the first definition error; definitions made before it
// remain in b.
//
// Returns:
//   - error: the combined Validate errors, errs.ErrDuplicateDimension,
//     errs.ErrDimensionMismatch, errs.ErrDuplicateUnit, or any error from the
//     builder
func (d *Document) Apply(b *catalog.Builder) error {
	if err := d.Validate(); err != nil {
		return err
	}

	logger := b.Logger()
	if err := d.applyDimensions(b, logger); err != nil {
		return err
	}

	for _, c := range d.Categories {
		if err := c.apply(b, logger); err != nil {
			return err
		}
	}

	logger.Debug("applied seed document",
		zap.Int("dimensions", len(d.Dimensions)),
		zap.Int("categories", len(d.Categories)),
	)

	return nil
}

func (d *Document) applyDimensions(b *catalog.Builder, logger *zap.Logger) error {
	reg := b.Dimensions()
	for _, dim := range d.Dimensions {
		sym, err := parseSymbol(dim.Symbol)
		if err != nil {
			return err
		}

		if existing, ok := reg.ByTextID(dim.ID); ok {
			if existing.Symbol() != sym {
				return fmt.Errorf("%w: %q is registered with symbol %q, seed declares %q",
					errs.ErrDuplicateDimension, dim.ID, existing.Symbol(), sym)
			}
			logger.Warn("skipping existing dimension", zap.Stringer("dimension", existing))

			continue
		}

		if _, err := b.DefineDimension(dim.ID, sym); err != nil {
			return err
		}
	}

	return nil
}

func (c Category) apply(b *catalog.Builder, logger *zap.Logger) error {
	exps, err := c.Exponents()
	if err != nil {
		return err
	}

	m, exists := b.Measurement(c.Name)
	if exists {
		if !m.Dimensions().Equal(exps) {
			return fmt.Errorf("%w: category %q has dimensions %s, seed declares %s",
				errs.ErrDimensionMismatch, c.Name, m.Dimensions(), exps)
		}
	} else {
		if c.Base == nil {
			return fmt.Errorf("category %q: %w: a new category needs a base unit", c.Name, errs.ErrEmptyUnitName)
		}
		m, err = b.DefineRuntime(c.Name, exps, c.Base.Name, c.Base.Plural, c.Base.Symbols...)
		if err != nil {
			return err
		}
	}

	added := 0
	for _, u := range c.Units {
		if existing, ok := m.FindUnit(u.Name); ok && existing.Name() == u.Name {
			if !existing.ToBase().Equal(u.ToBase()) {
				return fmt.Errorf("%w: %s/%s is already defined as %s", errs.ErrDuplicateUnit, m.Name(), u.Name, existing.ToBase())
			}
			logger.Warn("skipping existing unit", zap.String("category", m.Name()), zap.String("unit", u.Name))

			continue
		}

		if _, err := m.AddUnit(u.Name, u.Plural, u.ToBase(), u.Symbols...); err != nil {
			return err
		}
		added++
	}

	logger.Debug("applied seed category",
		zap.String("category", m.Name()),
		zap.Bool("existing", exists),
		zap.Int("units", added),
	)

	return nil
}

// Load decodes a document from r and applies it to b.
func Load(b *catalog.Builder, r io.Reader) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}

	return doc.Apply(b)
}
