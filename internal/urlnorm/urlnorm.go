// Package urlnorm implements spec.md §4.1: producing a canonical template
// path and associated parameter data from any Postman URL form.
package urlnorm

import (
	"strings"

	"github.com/pm2openapi/pm2openapi/postman"
)

// PathParam is a discovered path parameter, in discovery order.
type PathParam struct {
	Name        string
	Description *string
	Example     *string
}

// QueryParam is a discovered query parameter, in source order.
type QueryParam struct {
	Name    string
	Example *string
}

// Result is the output of Normalize.
type Result struct {
	ServerURL    string // empty when no server could be derived
	TemplatePath string
	PathParams   []PathParam
	QueryParams  []QueryParam
}

// Normalize implements the resolution algorithm of spec.md §4.1.
func Normalize(u postman.Url) Result {
	if !u.IsStructured() {
		u = parseRaw(u.Raw)
	}

	server := buildServer(u)
	template, names := buildPathTemplate(u.Path)
	params := collectPathParams(names, u.Variable)
	queries := collectQueryParams(u.Query)

	return Result{
		ServerURL:    server,
		TemplatePath: template,
		PathParams:   params,
		QueryParams:  queries,
	}
}

// parseRaw splits a raw URL string into the structured form per spec.md
// §4.1 step 1: split on "://", then "/", then "?", then "#". "{{…}}"
// substitutions are preserved literally (they are resolved into path
// parameter names later, in buildPathTemplate).
func parseRaw(raw string) postman.Url {
	if raw == "" {
		return postman.Url{}
	}

	var protocol, rest string
	if idx := strings.Index(raw, "://"); idx >= 0 {
		protocol = raw[:idx]
		rest = raw[idx+3:]
	} else {
		rest = raw
	}

	// Strip fragment and query before splitting the path.
	if idx := strings.IndexAny(rest, "#"); idx >= 0 {
		rest = rest[:idx]
	}

	var query string
	if idx := strings.Index(rest, "?"); idx >= 0 {
		query = rest[idx+1:]
		rest = rest[:idx]
	}

	segments := strings.Split(rest, "/")
	hostPart := segments[0]
	pathSegments := segments[1:]

	var host []string
	if hostPart != "" {
		host = strings.Split(hostPart, ".")
	}

	var path []string
	for _, seg := range pathSegments {
		if seg != "" {
			path = append(path, seg)
		}
	}

	var queryParams []postman.KeyValue
	if query != "" {
		for _, pair := range strings.Split(query, "&") {
			if pair == "" {
				continue
			}
			kv := strings.SplitN(pair, "=", 2)
			key := kv[0]
			value := ""
			if len(kv) > 1 {
				value = kv[1]
			}
			queryParams = append(queryParams, postman.KeyValue{Key: key, Value: value})
		}
	}

	return postman.Url{
		Raw:      raw,
		Protocol: protocol,
		Host:     host,
		Path:     path,
		Query:    queryParams,
	}
}

// buildServer implements spec.md §4.1 step 2: join host[] with ".", prefix
// with "protocol://" when set, else emit the bare host.
func buildServer(u postman.Url) string {
	if len(u.Host) == 0 {
		return ""
	}

	host := strings.Join(u.Host, ".")
	if u.Protocol != "" {
		return u.Protocol + "://" + host
	}
	return host
}

// buildPathTemplate implements spec.md §4.1 step 3, returning the
// template path and the path-parameter names discovered, in discovery
// order with duplicates removed (tie-break per spec.md §4.1 step 6).
func buildPathTemplate(segments []string) (string, []string) {
	var rendered []string
	var names []string
	seen := map[string]bool{}

	for _, seg := range segments {
		name, isParam := paramName(seg)
		if isParam {
			rendered = append(rendered, "{"+name+"}")
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		} else {
			rendered = append(rendered, seg)
		}
	}

	template := "/" + strings.Join(rendered, "/")
	// Collapse any accidental "//" that an empty leading segment introduces.
	for strings.Contains(template, "//") {
		template = strings.ReplaceAll(template, "//", "/")
	}
	if template == "" {
		template = "/"
	}

	return template, names
}

// paramName reports whether segment denotes a path parameter (either
// ":name" or "{{name}}") and, if so, its bare name.
func paramName(segment string) (string, bool) {
	if strings.HasPrefix(segment, ":") {
		return segment[1:], true
	}
	if strings.HasPrefix(segment, "{{") && strings.HasSuffix(segment, "}}") {
		return segment[2 : len(segment)-2], true
	}
	return "", false
}

// collectPathParams implements spec.md §4.1 step 4.
func collectPathParams(names []string, variables []postman.URLVariable) []PathParam {
	params := make([]PathParam, 0, len(names))
	for _, name := range names {
		p := PathParam{Name: name}
		for _, v := range variables {
			if v.Key == name {
				p.Description = v.Description
				p.Example = v.Value
				break
			}
		}
		params = append(params, p)
	}
	return params
}

// collectQueryParams implements spec.md §4.1 step 5: disabled entries are
// omitted, duplicate names keep the first occurrence's example.
func collectQueryParams(query []postman.KeyValue) []QueryParam {
	var params []QueryParam
	seen := map[string]bool{}

	for _, kv := range query {
		if kv.Disabled {
			continue
		}

		if seen[kv.Key] {
			// Duplicate name: keep the first; only append a distinct
			// example as an enum-like hint isn't representable on this
			// flattened QueryParam, so the first occurrence simply wins,
			// matching the conservative half of spec.md §4.1 step 5.
			continue
		}
		seen[kv.Key] = true

		value := kv.Value
		var example *string
		if value != "" {
			example = &value
		}

		params = append(params, QueryParam{Name: kv.Key, Example: example})
	}

	return params
}
