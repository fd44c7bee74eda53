package match

import (
	"regexp"
	"strings"
)

// clauseRE locates the customers IN clause inside a free-form query, e.g.
//
//	"customers[select list (multiple choices)]" IN ("JCB UK", Goupil, REE)
//
// The match ends right after the opening parenthesis; the value list is then
// scanned manually because quoted names may themselves contain parentheses.
var clauseRE = regexp.MustCompile(`(?is)customers.*?\bIN\s*\(`)

// noiseTokens are bare words that can bleed into a sloppily written value
// list and are never customer names.
var noiseTokens = map[string]struct{}{
	"AND": {}, "OR": {}, "IN": {}, "NOT": {},
}

// ExtractCustomers pulls the customer names out of the query's IN clause.
// Quoted names keep their original casing and inner spacing; bare names are
// trimmed. A malformed or absent clause yields an empty result rather than an
// error, so the matcher degrades to matching nothing.
func ExtractCustomers(query string) []string {
	loc := clauseRE.FindStringIndex(query)
	if loc == nil {
		return nil
	}

	body, ok := clauseBody(query[loc[1]:])
	if !ok {
		return nil
	}

	var customers []string
	for _, tok := range splitOutsideQuotes(body) {
		name := strings.TrimSpace(strings.Trim(strings.TrimSpace(tok), `"`))
		if name == "" {
			continue
		}
		if _, noise := noiseTokens[strings.ToUpper(name)]; noise {
			continue
		}
		customers = append(customers, name)
	}
	return customers
}

// clauseBody returns everything up to the closing parenthesis, honouring
// double quotes so names like "Noam (Segula)" survive intact.
func clauseBody(s string) (string, bool) {
	inQuotes := false
	for i, r := range s {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ')':
			if !inQuotes {
				return s[:i], true
			}
		}
	}
	return "", false
}

func splitOutsideQuotes(s string) []string {
	var toks []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ',' && !inQuotes:
			toks = append(toks, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	toks = append(toks, cur.String())
	return toks
}
