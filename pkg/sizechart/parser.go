package sizechart

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses size-chart definition files.
type Parser struct {
	parser *participle.Parser[ChartFile]
}

// NewParser builds a chart parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[ChartFile](
		participle.Lexer(chartLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads a chart definition from a reader and compiles it.
func (p *Parser) Parse(r io.Reader) (*Chart, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return compile(file)
}

// ParseString compiles a chart definition from a string.
func (p *Parser) ParseString(input string) (*Chart, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return compile(file)
}

// ParseFile compiles a chart definition from a file path.
func (p *Parser) ParseFile(filename string) (*Chart, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// compile turns a parse tree into a validated Chart.
func compile(file *ChartFile) (*Chart, error) {
	chart := &Chart{Name: file.Name}
	for _, rule := range file.Rules {
		switch {
		case rule.Below != nil:
			if chart.Final != "" {
				return nil, fmt.Errorf("chart %q: below rule after else", file.Name)
			}
			chart.Buckets = append(chart.Buckets, Bucket{
				UpperMm: rule.Below.Threshold,
				Label:   rule.Below.Label,
			})
		case rule.Else != nil:
			if chart.Final != "" {
				return nil, fmt.Errorf("chart %q: duplicate else rule", file.Name)
			}
			chart.Final = rule.Else.Label
		}
	}
	if err := chart.Validate(); err != nil {
		return nil, err
	}
	return chart, nil
}
