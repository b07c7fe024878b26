// Package selector maps component family names or exact part names to the
// matching subset of an assembled part set.
package selector

import (
	"strings"

	"github.com/Faultbox/rocketmesh/internal/mesh"
)

// All selects every part.
const All = "all"

// Family names.
const (
	FamilyMotor    = "motor"
	FamilyNoseCone = "nosecone"
	FamilyBody     = "body"
	FamilyFins     = "fins"
	FamilyTail     = "tail"
)

var families = map[string]func(name string) bool{
	FamilyMotor: func(n string) bool {
		return n == mesh.PartMotorCasing || n == mesh.PartMotorNozzle || n == mesh.PartMotorClosure
	},
	FamilyNoseCone: func(n string) bool { return n == mesh.PartNoseCone },
	FamilyBody:     func(n string) bool { return n == mesh.PartBody },
	FamilyFins:     isFin,
	FamilyTail:     func(n string) bool { return n == mesh.PartTail },
}

// Families returns the recognized family names.
func Families() []string {
	return []string{FamilyMotor, FamilyNoseCone, FamilyBody, FamilyFins, FamilyTail}
}

// Select returns the parts matching any of the selection tokens, in
// assembly order and without duplicates. A token is "all", a family name
// (case-insensitive) or an exact part name. Tokens matching nothing are
// ignored, and surrounding whitespace never matters. An empty selection
// selects nothing.
func Select(parts *mesh.Parts, selection ...string) *mesh.Parts {
	var matchers []func(string) bool
	for _, tok := range selection {
		tok = strings.TrimSpace(tok)
		key := strings.ToLower(tok)
		if key == All {
			matchers = []func(string) bool{func(string) bool { return true }}
			break
		}
		if f, ok := families[key]; ok {
			matchers = append(matchers, f)
			continue
		}
		exact := tok
		matchers = append(matchers, func(n string) bool { return n == exact })
	}

	out := mesh.NewParts()
	parts.Each(func(name string, m *mesh.Mesh) {
		for _, match := range matchers {
			if match(name) {
				out.Set(name, m)
				return
			}
		}
	})
	return out
}

// Split expands comma-separated selection arguments into tokens.
func Split(args ...string) []string {
	var out []string
	for _, a := range args {
		for _, tok := range strings.Split(a, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

func isFin(name string) bool {
	rest, ok := strings.CutPrefix(name, mesh.FinPrefix)
	if !ok || rest == "" {
		return false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
