package sizechart

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// chartLexer defines the lexical structure of size-chart files: a handful
// of keywords, numbers and labels, with line comments in the "--" style.
var chartLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `--[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwChart", Pattern: `\bchart\b`},
	{Name: "KwBelow", Pattern: `\bbelow\b`},
	{Name: "KwElse", Pattern: `\belse\b`},
	{Name: "KwEnd", Pattern: `\bend\b`},

	// Punctuation
	{Name: "Arrow", Pattern: `->`},

	// Values
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_.\-]*`},
})
