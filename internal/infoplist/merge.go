// Package infoplist merges override records into an iOS *-Info.plist.
//
// Each fragment record replaces one top-level key in full. The fragment is
// rendered to plist markup (attributes ignored), decoded on its own and the
// decoded value is assigned to the key. Nested structures are never merged.
package infoplist

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/beevik/etree"
	"howett.net/plist"

	"platform-config/internal/diagnostic"
	"platform-config/internal/fragment"
	"platform-config/internal/plan"
)

// ErrRender is returned when a fragment does not decode as a plist value.
var ErrRender = errors.New("fragment is not a valid plist value")

// emptyString matches empty string entries, self-closing or holding only whitespace.
var emptyString = regexp.MustCompile(`<string\s*/>|<string>\s*</string>`)

// Document is a decoded property list with the format it was read in.
type Document struct {
	Values map[string]any
	Format int
}

// Decode decodes a property list whose root is a dictionary.
func Decode(data []byte) (*Document, error) {
	values := make(map[string]any)

	format, err := plist.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plist: %w", err)
	}

	return &Document{Values: values, Format: format}, nil
}

// Encode serializes the document in its original format.
// XML output is tab indented and blank string entries are normalized.
func (d *Document) Encode() ([]byte, error) {
	out, err := plist.MarshalIndent(d.Values, d.Format, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize plist: %w", err)
	}

	if d.Format == plist.XMLFormat {
		out = emptyString.ReplaceAll(out, []byte("<string></string>"))
	}

	return out, nil
}

// Apply decodes plist bytes, merges records and encodes the result.
func Apply(data []byte, records []plan.Record) ([]byte, diagnostic.Diagnostics, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	diags, err := Merge(doc, records)
	if err != nil {
		return nil, diags, err
	}

	out, err := doc.Encode()
	if err != nil {
		return nil, diags, err
	}

	return out, diags, nil
}

// Merge replaces one top-level key per fragment record, in order.
// Preference records have no meaning for plists and are skipped.
func Merge(doc *Document, records []plan.Record) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	for _, rec := range records {
		if rec.Kind != plan.KindFragment || rec.Fragment == nil {
			diags.AddSkip(diagnostic.ReasonPreferenceUnsupported,
				fmt.Sprintf("%s %s cannot be applied to a plist", rec.Kind, rec.Destination), rec.Target, rec.Parent)

			continue
		}

		value, err := Value(rec.Parent, rec.Fragment)
		if err != nil {
			return diags, fmt.Errorf("key %s: %w", rec.Parent, err)
		}

		doc.Values[rec.Parent] = value
	}

	return diags, nil
}

// Value decodes a fragment as the value of key.
func Value(key string, n *fragment.Node) (any, error) {
	wrapper := etree.NewDocument()
	dict := wrapper.CreateElement("plist").CreateElement("dict")
	dict.CreateElement("key").SetText(key)
	dict.AddChild(element(n))

	data, err := wrapper.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	values := make(map[string]any)

	_, err = plist.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	value, ok := values[key]
	if !ok {
		return nil, fmt.Errorf("%w: no value rendered for %s", ErrRender, key)
	}

	return value, nil
}

// element renders a fragment without attributes: the trimmed text when
// present, the children otherwise.
func element(n *fragment.Node) *etree.Element {
	e := etree.NewElement(n.Tag)

	if text := n.TrimmedText(); text != "" {
		e.SetText(text)
		return e
	}

	for _, child := range n.Children {
		e.AddChild(element(child))
	}

	return e
}
