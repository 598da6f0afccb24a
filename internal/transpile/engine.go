// Package transpile implements spec.md §4.3: the Transpiler Engine that
// walks a Postman collection tree and assembles an OpenAPI 3.0 document.
//
// The engine is single-threaded and synchronous (spec.md §5): all mutable
// state is held in an explicit *engine value threaded through every walk
// function, never ambient, so two concurrent conversions never interact.
package transpile

import (
	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
	"github.com/pm2openapi/pm2openapi/sequencedmap"
)

// engine carries all state mutated during one walk of a Postman
// collection, per spec.md §4.3 "Internal state carried through the walk".
type engine struct {
	doc *openapi.OpenApi

	servers    []string
	serverSeen map[string]bool

	operationIDs map[string]bool

	// Named component schema promotion (SPEC_FULL.md §7): every object
	// schema signature seen is tracked in first-seen order so that any
	// signature used more than once can be promoted to
	// components.schemas at finalize time, with every occurrence
	// rewritten to a $ref.
	schemaSigOrder  []string
	schemaSigSeen   map[string]bool
	schemaSlots     map[string][]**openapi.Schema
	schemaFirstHint map[string]string
	schemaNames     map[string]bool

	securitySchemeNames map[string]bool
	securitySchemeSig   map[string]string

	tagSeen map[string]bool

	varStack []map[string]string
}

func newEngine() *engine {
	return &engine{
		doc:                 openapi.New(),
		serverSeen:          map[string]bool{},
		operationIDs:        map[string]bool{},
		schemaSigSeen:       map[string]bool{},
		schemaSlots:         map[string][]**openapi.Schema{},
		schemaFirstHint:     map[string]string{},
		schemaNames:         map[string]bool{},
		securitySchemeNames: map[string]bool{},
		securitySchemeSig:   map[string]string{},
		tagSeen:             map[string]bool{},
	}
}

// Transpile runs the full pipeline of spec.md §4.3 over a decoded Postman
// collection and returns the populated OpenAPI document.
func Transpile(collection *postman.Collection) *openapi.OpenApi {
	e := newEngine()

	scope := map[string]string{}
	for _, v := range collection.Variable {
		scope[v.Key] = v.Value
	}
	e.pushScope(scope)

	e.seedInfo(collection)

	// The collection's own auth is the base of the auth-inheritance
	// chain (SPEC_FULL.md §7 "Collection-level auth inheritance"):
	// registered up front like a folder's auth, and carried as the root
	// folderContext so any folder or request without its own auth falls
	// back to it, same as a nested folder falls back to its parent.
	if collection.Auth != nil {
		if scheme, baseName := translateAuth(collection.Auth); scheme != nil {
			e.registerSecurityScheme(scheme, baseName)
		}
	}
	root := &folderContext{auth: collection.Auth}

	for _, item := range collection.Item {
		e.walkItem(item, root)
	}

	e.finalize()

	return e.doc
}

// seedInfo implements spec.md §4.3 step 1.
func (e *engine) seedInfo(collection *postman.Collection) {
	title := collection.Info.Name
	if title == "" {
		title = "API"
	}
	e.doc.Info.Title = title
	e.doc.Info.Description = e.substituteVariablesPtr(collection.Info.Description)

	version := "1.0.0"
	if collection.Info.Version != nil && *collection.Info.Version != "" {
		version = *collection.Info.Version
	} else {
		for _, v := range collection.Variable {
			if v.Key == "apiVersion" && v.Value != "" {
				version = v.Value
				break
			}
		}
	}
	e.doc.Info.Version = version
}

// finalize implements spec.md §4.3 step 5: assemble servers in insertion
// order (omitted entirely if empty), promote repeated object schemas into
// components, and drop components if nothing was collected. Tags are
// appended during the walk by registerTag, not here.
func (e *engine) finalize() {
	if len(e.servers) > 0 {
		for _, url := range e.servers {
			e.doc.Servers = append(e.doc.Servers, &openapi.Server{URL: url})
		}
	}
	e.finalizePromotedSchemas()
	if e.doc.Components.IsEmpty() {
		e.doc.Components = nil
	}
}

// registerServer implements the server-registration half of spec.md
// §4.3(a): insertion-unique, first-appearance order (invariant 5 of §8).
func (e *engine) registerServer(url string) {
	if url == "" || e.serverSeen[url] {
		return
	}
	e.serverSeen[url] = true
	e.servers = append(e.servers, url)
}

func (e *engine) pushScope(scope map[string]string) {
	e.varStack = append(e.varStack, scope)
}

func (e *engine) popScope() {
	e.varStack = e.varStack[:len(e.varStack)-1]
}

// resolveVariable resolves a "{{name}}" reference against the variable
// stack, collection scope at the bottom, innermost folder on top, per
// spec.md §4.3's "variable_stack" description. Used only for operation
// metadata (descriptions), never for path templating (spec.md §3's Url
// resolution algorithm preserves "{{…}}" literally there).
func (e *engine) resolveVariable(name string) (string, bool) {
	for i := len(e.varStack) - 1; i >= 0; i-- {
		if v, ok := e.varStack[i][name]; ok {
			return v, true
		}
	}
	return "", false
}

func (e *engine) components() *openapi.Components {
	if e.doc.Components == nil {
		e.doc.Components = &openapi.Components{}
	}
	return e.doc.Components
}

func (e *engine) ensureSchemas() *sequencedmap.Map[string, *openapi.Schema] {
	c := e.components()
	if c.Schemas == nil {
		c.Schemas = sequencedmap.New[string, *openapi.Schema]()
	}
	return c.Schemas
}

func (e *engine) ensureSecuritySchemes() *sequencedmap.Map[string, *openapi.SecurityScheme] {
	c := e.components()
	if c.SecuritySchemes == nil {
		c.SecuritySchemes = sequencedmap.New[string, *openapi.SecurityScheme]()
	}
	return c.SecuritySchemes
}
