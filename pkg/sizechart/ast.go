package sizechart

// ChartFile is the parse tree of one size-chart definition.
//
// Example:
//
//	-- UK men's chart
//	chart UK
//	  below 240 -> 5
//	  below 250 -> 6
//	  else -> 10
//	end
type ChartFile struct {
	Name  string  `parser:"KwChart @Ident"`
	Rules []*Rule `parser:"@@* KwEnd"`
}

// Rule is one line of a chart body.
type Rule struct {
	Below *BelowRule `parser:"  @@"`
	Else  *ElseRule  `parser:"| @@"`
}

// BelowRule maps lengths strictly below a millimeter threshold to a size.
type BelowRule struct {
	Threshold float64 `parser:"KwBelow @Number Arrow"`
	Label     string  `parser:"@( Number | Ident )"`
}

// ElseRule catches lengths at or above every threshold.
type ElseRule struct {
	Label string `parser:"KwElse Arrow @( Number | Ident )"`
}
