// Package seed loads measurement categories and units from YAML or JSON
// documents into a catalog.Builder.
//
// A document lists base dimensions and categories:
//
//	dimensions:
//	  - id: Luminous intensity
//	    symbol: J
//	categories:
//	  - name: Luminosity
//	    dimensions: {J: 1}
//	    base: {name: Candela, plural: Candelas, symbols: [cd]}
//	    units:
//	      - {name: Millicandela, plural: Millicandelas, scale: 0.001, symbols: [mcd]}
//	  - name: Position
//	    dimensions: {L: 1}
//	    units:
//	      - {name: Furlong, plural: Furlongs, scale: 201.168, symbols: [fur]}
//
// Categories that already exist in the builder, such as the built-in ones, are
// extended with the listed units after their exponents are checked. Other
// categories are defined as runtime categories. Reading files is left to the
// caller.
package seed
