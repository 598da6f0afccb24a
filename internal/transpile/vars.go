package transpile

import "strings"

// varReplaceCredits bounds recursive variable resolution (see
// substituteVariables), matching the reference implementation's
// VAR_REPLACE_CREDITS: a variable whose own value contains another
// "{{var}}" reference is resolved through the chain, rather than leaving
// the inner reference as a literal substring of the outer value, but a
// circular chain of variables degrades to "stop substituting" instead of
// recursing forever.
const varReplaceCredits = 20

// substituteVariables implements spec.md §3's "variable_stack ... used to
// resolve {{var}} only for operation metadata" rule: every "{{name}}"
// token in s is replaced by its resolution against the current variable
// stack (collection scope at the bottom, innermost folder on top); an
// unresolved token is left literal, matching spec.md §4.3's "Failure
// semantics" (recover locally, never abort). The result is re-scanned for
// newly introduced "{{var}}" references up to varReplaceCredits times
// (SPEC_FULL.md §7 "Credit-bounded recursive variable resolution").
func (e *engine) substituteVariables(s string) string {
	return e.substituteVariablesWithCredits(s, varReplaceCredits)
}

func (e *engine) substituteVariablesWithCredits(s string, credits int) string {
	if credits <= 0 {
		return s
	}

	out := e.substituteOnePass(s)
	if out == s {
		return out
	}
	return e.substituteVariablesWithCredits(out, credits-1)
}

func (e *engine) substituteOnePass(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	var b strings.Builder
	rest := s
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start

		b.WriteString(rest[:start])
		name := rest[start+2 : end]
		if value, ok := e.resolveVariable(name); ok {
			b.WriteString(value)
		} else {
			b.WriteString(rest[start : end+2])
		}
		rest = rest[end+2:]
	}
	return b.String()
}

// substituteVariablesPtr applies substituteVariables to an optional
// string field, leaving nil untouched.
func (e *engine) substituteVariablesPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := e.substituteVariables(*s)
	return &out
}
