package almanac

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// almanacLexer splits input into numbers, words and the "-" ":" separators.
var almanacLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[-:]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

//nolint:govet // participle grammar tags are not standard struct tags
type fileGrammar struct {
	Seeds []uint64        `parser:"'seeds' ':' @Int*"`
	Maps  []*blockGrammar `parser:"@@*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type blockGrammar struct {
	From  string         `parser:"@Ident '-' 'to' '-'"`
	To    string         `parser:"@Ident 'map' ':'"`
	Lines []*lineGrammar `parser:"@@*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type lineGrammar struct {
	Destination uint64 `parser:"@Int"`
	Source      uint64 `parser:"@Int"`
	Length      uint64 `parser:"@Int"`
}

var almanacParser = participle.MustBuild[fileGrammar](
	participle.Lexer(almanacLexer),
	participle.Elide("Whitespace"),
)
