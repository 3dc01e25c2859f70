package manifest

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"

	"platform-config/internal/diagnostic"
	"platform-config/internal/fragment"
	"platform-config/internal/plan"
)

// Permission children are addressed by name, not by tag alone.
const (
	PermissionTag = "uses-permission"
	IdentityAttr  = "android:name"
	indentSpaces  = 4
)

// Apply parses manifest bytes, merges records and serializes the result
// with 4-space indentation.
func Apply(data []byte, records []plan.Record) ([]byte, diagnostic.Diagnostics, error) {
	if i := bytes.IndexByte(data, '<'); i > 0 {
		data = data[i:]
	}

	doc := etree.NewDocument()

	err := doc.ReadFromBytes(data)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if doc.Root() == nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to parse manifest: no root element")
	}

	diags := Merge(doc, records)

	doc.Indent(indentSpaces)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, diags, fmt.Errorf("failed to serialize manifest: %w", err)
	}

	return out, diags, nil
}

// Merge applies records to the document in order. Records whose parent
// cannot be resolved are reported as skips. A document without a root
// element is left untouched.
func Merge(doc *etree.Document, records []plan.Record) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if doc.Root() == nil {
		return diags
	}

	resolver := NewResolver(doc.Root())

	for _, rec := range records {
		res := resolver.Resolve(rec.Parent)
		if !res.Found() {
			diags.AddSkip(res.Skip, fmt.Sprintf("%s %s not applied: %s", rec.Kind, rec.Destination, res.Detail),
				rec.Target, rec.Parent)

			continue
		}

		switch rec.Kind {
		case plan.KindPreference:
			res.Element.CreateAttr(rec.Destination, rec.Value())
		case plan.KindFragment:
			upsert(res.Element, rec.Destination, rec.Fragment)
		}
	}

	return diags
}

// upsert overwrites the child matching the fragment or appends a new one.
func upsert(parent *etree.Element, tag string, frag *fragment.Node) {
	if frag == nil {
		return
	}

	child := findChild(parent, tag, frag)
	if child == nil {
		parent.AddChild(frag.Element())
		return
	}

	frag.CopyInto(child)
}

// findChild returns the first direct child matching the selector for frag.
func findChild(parent *etree.Element, tag string, frag *fragment.Node) *etree.Element {
	if tag != PermissionTag {
		return parent.SelectElement(tag)
	}

	name, ok := frag.Attr(IdentityAttr)
	if !ok {
		// unnamed permissions cannot be addressed; always appended
		return nil
	}

	for _, c := range parent.SelectElements(tag) {
		if attr := c.SelectAttr(IdentityAttr); attr != nil && attr.Value == name {
			return c
		}
	}

	return nil
}
