package grammarspec

import (
	"strings"

	"github.com/ploteq/timex/cfg"
)

// rawSym is an unresolved right-hand-side symbol as parsed from source: a
// bare name (nonterminal reference), a quoted literal, or a call to a
// terminal factory.
type rawSym struct {
	kind    symKind
	name    string // nonterminal name, or factory name for a funcall
	literal string // unquoted literal text, for kind == symLiteral
	args    []string
}

type symKind int

const (
	symNonterminal symKind = iota
	symLiteral
	symFuncall
)

// actionSpec is an unresolved reference to a named action, optionally
// parameterized, as parsed from an EXPR token's "{ name }" or
// "{ name(args) }" body.
type actionSpec struct {
	name string
	args []string
}

// rawAlt is one alternative of a production's right-hand side, paired with
// the action (if any) given for it.
type rawAlt struct {
	rhs    []rawSym
	action *actionSpec
}

// rawProd is a single "lhs -> alt1 | alt2 | ..." production group as parsed
// from source, before its symbols and action names are resolved against a
// Bindings registry.
type rawProd struct {
	lhs  string
	alts []rawAlt
}

// kindIs builds a cfg.FuncTerminal matching any Token of the given kind.
func kindIs(kind TokenKind) cfg.FuncTerminal {
	return cfg.FuncTerminal{
		Name: kind.String(),
		Fn: func(tok cfg.Token) bool {
			t, ok := tok.(Token)
			return ok && t.Kind == kind
		},
	}
}

// opIs builds a cfg.FuncTerminal matching a Token of the given kind whose
// text equals text exactly (used for the "->" and "|" punctuation tokens).
func opIs(kind TokenKind, text string) cfg.FuncTerminal {
	return cfg.FuncTerminal{
		Name: text,
		Fn: func(tok cfg.Token) bool {
			t, ok := tok.(Token)
			return ok && t.Kind == kind && t.Text == text
		},
	}
}

func asToken(v cfg.Value) Token { return v.(Token) }

// metaGrammar is the bootstrap grammar for grammar-spec source text, grounded
// directly on original_source/grammarparser.py's grammar_spec_grammar. It
// turns a Tokenize'd []Token stream into a []rawProd, which Load then
// resolves against a caller-supplied Bindings registry.
var metaGrammar = buildMetaGrammar()

func buildMetaGrammar() *cfg.AttributeGrammar {
	pGrammar := cfg.NewProduction("grammar", cfg.Nonterminal("prodlist"), kindIs(ENDMARKER))
	pProdlistMulti := cfg.NewProduction("prodlist", cfg.Nonterminal("prodlist"), cfg.Nonterminal("prod"), kindIs(NEWLINE))
	pProdlistOne := cfg.NewProduction("prodlist", cfg.Nonterminal("prod"), kindIs(NEWLINE))
	pProd := cfg.NewProduction("prod", kindIs(NAME), opIs(ARROW, "->"), cfg.Nonterminal("alt"))
	pAltPipe := cfg.NewProduction("alt", cfg.Nonterminal("alt"), opIs(PIPE, "|"), cfg.Nonterminal("rhs"))
	pAltNLPipe := cfg.NewProduction("alt", cfg.Nonterminal("alt"), kindIs(NEWLINE), opIs(PIPE, "|"), cfg.Nonterminal("rhs"))
	pAltOne := cfg.NewProduction("alt", cfg.Nonterminal("rhs"))
	pRHSAction := cfg.NewProduction("rhs", cfg.Nonterminal("symlist"), cfg.Nonterminal("action"))
	pRHSBare := cfg.NewProduction("rhs", cfg.Nonterminal("symlist"))
	pSymlistMulti := cfg.NewProduction("symlist", cfg.Nonterminal("symlist"), cfg.Nonterminal("sym"))
	pSymlistOne := cfg.NewProduction("symlist", cfg.Nonterminal("sym"))
	pSymName := cfg.NewProduction("sym", kindIs(NAME))
	pSymString := cfg.NewProduction("sym", kindIs(STRING))
	pSymFuncall := cfg.NewProduction("sym", kindIs(NAME), kindIs(TUPLE))
	pAction := cfg.NewProduction("action", kindIs(EXPR))

	rules := []cfg.Rule{
		{Production: pGrammar, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rhs[0].([]rawProd), nil
		}},
		{Production: pProdlistMulti, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return append(rhs[0].([]rawProd), rhs[1].(rawProd)), nil
		}},
		{Production: pProdlistOne, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return []rawProd{rhs[0].(rawProd)}, nil
		}},
		{Production: pProd, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rawProd{lhs: asToken(rhs[0]).Text, alts: rhs[2].([]rawAlt)}, nil
		}},
		{Production: pAltPipe, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return append(rhs[0].([]rawAlt), rhs[2].(rawAlt)), nil
		}},
		{Production: pAltNLPipe, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return append(rhs[0].([]rawAlt), rhs[3].(rawAlt)), nil
		}},
		{Production: pAltOne, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return []rawAlt{rhs[0].(rawAlt)}, nil
		}},
		{Production: pRHSAction, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			spec := rhs[1].(actionSpec)
			return rawAlt{rhs: rhs[0].([]rawSym), action: &spec}, nil
		}},
		{Production: pRHSBare, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rawAlt{rhs: rhs[0].([]rawSym)}, nil
		}},
		{Production: pSymlistMulti, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return append(rhs[0].([]rawSym), rhs[1].(rawSym)), nil
		}},
		{Production: pSymlistOne, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return []rawSym{rhs[0].(rawSym)}, nil
		}},
		{Production: pSymName, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rawSym{kind: symNonterminal, name: asToken(rhs[0]).Text}, nil
		}},
		{Production: pSymString, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			lit, err := Unquote(asToken(rhs[0]).Text)
			if err != nil {
				return nil, err
			}
			return rawSym{kind: symLiteral, literal: lit}, nil
		}},
		{Production: pSymFuncall, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			name := asToken(rhs[0]).Text
			args, err := splitArgs(asToken(rhs[1]).Text)
			if err != nil {
				return nil, err
			}
			return rawSym{kind: symFuncall, name: name, args: args}, nil
		}},
		{Production: pAction, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return parseActionSpec(asToken(rhs[0]).Text)
		}},
	}

	return cfg.NewAttributeGrammar("grammar", rules)
}

// parseActionSpec parses an EXPR token's interior ("name" or
// "name(arg1, arg2)") into an actionSpec.
func parseActionSpec(raw string) (actionSpec, error) {
	raw = strings.TrimSpace(raw)
	open := strings.IndexByte(raw, '(')
	if open < 0 {
		if raw == "" {
			return actionSpec{}, &InvalidActionError{Name: raw, Kind: "action", Err: errEmptyActionName}
		}
		return actionSpec{name: raw}, nil
	}
	if !strings.HasSuffix(raw, ")") {
		return actionSpec{}, &InvalidActionError{Name: raw, Kind: "action", Err: errUnbalancedActionCall}
	}
	name := strings.TrimSpace(raw[:open])
	args, err := splitArgs(raw[open+1 : len(raw)-1])
	if err != nil {
		return actionSpec{}, err
	}
	return actionSpec{name: name, args: args}, nil
}

// splitArgs splits a comma-separated argument list, honoring quoted strings
// so that a literal comma inside a string argument isn't treated as a
// separator. Each returned element is trimmed; a quoted element is unquoted.
func splitArgs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var args []string
	var cur strings.Builder
	inQuote := rune(0)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case inQuote != 0:
			cur.WriteByte(c)
			if c == '\\' && i+1 < len(raw) {
				i++
				cur.WriteByte(raw[i])
				continue
			}
			if rune(c) == inQuote {
				inQuote = 0
			}
		case c == '"' || c == '\'':
			inQuote = rune(c)
			cur.WriteByte(c)
		case c == ',':
			args = append(args, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	args = append(args, strings.TrimSpace(cur.String()))
	for i, a := range args {
		if len(a) >= 2 && (a[0] == '"' || a[0] == '\'') {
			u, err := Unquote(a)
			if err != nil {
				return nil, err
			}
			args[i] = u
		}
	}
	return args, nil
}
