package transpile

import (
	"strconv"

	"github.com/gobuffalo/flect"

	"github.com/pm2openapi/pm2openapi/openapi"
)

// trackSchema implements SPEC_FULL.md §7 "Named component schemas": object-
// typed schemas are tracked by structural signature in first-seen order so
// that finalizePromotedSchemas can later promote any signature used more
// than once to components.schemas, rewriting every occurrence to a $ref.
// slot is the address of the *Schema field this inferred schema was just
// assigned to (e.g. &mediaType.Schema); hint seeds the generated component
// name the first time this signature is seen.
func (e *engine) trackSchema(slot **openapi.Schema, hint string) {
	schema := *slot
	if !schema.IsObject() {
		return
	}

	sig := schema.Signature()
	if !e.schemaSigSeen[sig] {
		e.schemaSigSeen[sig] = true
		e.schemaSigOrder = append(e.schemaSigOrder, sig)
		e.schemaFirstHint[sig] = hint
	}
	e.schemaSlots[sig] = append(e.schemaSlots[sig], slot)
}

// finalizePromotedSchemas implements the promotion step: any tracked
// signature with two or more occurrences becomes a components.schemas
// entry, and every recorded slot is rewritten to reference it.
func (e *engine) finalizePromotedSchemas() {
	for _, sig := range e.schemaSigOrder {
		slots := e.schemaSlots[sig]
		if len(slots) < 2 {
			continue
		}

		name := e.nameForSchema(e.schemaFirstHint[sig])
		canonical := *slots[0]
		e.ensureSchemas().Set(name, canonical)

		ref := openapi.NewRef(name)
		for _, slot := range slots {
			*slot = ref
		}
	}
}

// nameForSchema derives a collision-free components.schemas key from a
// naming hint (an operationId fragment), Pascal-cased per SPEC_FULL.md
// §4.7's gobuffalo/flect wiring.
func (e *engine) nameForSchema(hint string) string {
	base := flect.Pascalize(hint)
	if base == "" {
		base = "Schema"
	}

	name := base
	for n := 2; e.schemaNames[name]; n++ {
		name = base + "_" + strconv.Itoa(n)
	}
	e.schemaNames[name] = true
	return name
}
