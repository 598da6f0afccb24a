package transpile

import (
	"strconv"
	"strings"

	"github.com/stoewer/go-strcase"
)

// slug implements spec.md §4.3(g)'s identifier rule: lowercase, runs of
// non-alphanumeric characters collapsed to a single "-", leading/trailing
// "-" stripped. go-strcase.KebabCase does the case-aware splitting; the
// trailing collapse/trim pass guards inputs it leaves with punctuation
// runs (e.g. "Get User!!" or a template path's "/" and "{}").
func slug(s string) string {
	kebab := strcase.KebabCase(s)

	var b strings.Builder
	lastDash := false
	for _, r := range kebab {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	return out
}

// operationID implements spec.md §4.3(g) in full: default from the
// request item's name, falling back to "<method>-<template_path>" when
// the name yields an empty slug, then disambiguated against every
// previously reserved id by appending "-2", "-3", ….
func (e *engine) operationID(name string, method, templatePath string) string {
	base := slug(name)
	if base == "" {
		base = slug(method + "-" + templatePath)
	}
	if base == "" {
		base = "operation"
	}

	id := base
	for n := 2; e.operationIDs[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	e.operationIDs[id] = true
	return id
}

// reserveOperationID registers an id-slug without assigning it to any
// operation, per spec.md §4.3(b)'s merge rule: a second request item
// sharing (template_path, method) with the first still has its own
// generated operationId "made unique" even though the merge discards it,
// so that id can never collide with a later, genuinely distinct operation.
func (e *engine) reserveOperationID(name string, method, templatePath string) {
	e.operationID(name, method, templatePath)
}
