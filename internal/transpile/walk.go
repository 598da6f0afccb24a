package transpile

import (
	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
)

// walkItem implements spec.md §4.3 step 3: depth-first traversal of
// item[], pushing a folder's variables/tag onto the walk context on
// descent and popping on ascent. ctx.tagName holds the enclosing folder
// names, joined with " / " when nested more than one level, per spec.md §4.3.
func (e *engine) walkItem(item postman.Item, ctx *folderContext) {
	if item.IsFolder() {
		e.walkFolder(item.Folder, ctx)
		return
	}
	if item.Request != nil {
		e.assembleRequest(item.Request, ctx)
	}
}

// folderContext accumulates the tag name and auth inherited from
// enclosing folders as the walk descends.
type folderContext struct {
	tagName string
	auth    *postman.Auth
}

func (e *engine) walkFolder(f *postman.Folder, parent *folderContext) {
	scope := map[string]string{}
	for _, v := range f.Variable {
		scope[v.Key] = v.Value
	}
	e.pushScope(scope)
	defer e.popScope()

	tagName := f.Name
	if parent != nil && parent.tagName != "" {
		tagName = parent.tagName + " / " + f.Name
	}

	e.registerTag(tagName, f.Description)

	// A folder's own auth is registered into components.securitySchemes
	// as soon as it's encountered, independent of whether any contained
	// operation ends up using it directly (a request-level auth can
	// override it per spec.md §4.3(e) without that registration being
	// lost — see pm2openapi_test.go's TestTranspileJSON_AuthOverride_S4).
	if f.Auth != nil {
		if scheme, baseName := translateAuth(f.Auth); scheme != nil {
			e.registerSecurityScheme(scheme, baseName)
		}
	}

	auth := f.Auth
	if auth == nil && parent != nil {
		auth = parent.auth
	}

	ctx := &folderContext{tagName: tagName, auth: auth}

	for _, child := range f.Item {
		e.walkItem(child, ctx)
	}
}

// registerTag implements spec.md §4.3 step 3's tag/description rule:
// folder description becomes the tag description on first occurrence
// only, and tags appear in first-encounter order (spec.md §5).
func (e *engine) registerTag(name string, description *string) {
	if e.tagSeen[name] {
		return
	}
	e.tagSeen[name] = true

	e.doc.Tags = append(e.doc.Tags, &openapi.Tag{Name: name, Description: description})
}
