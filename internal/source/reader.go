package source

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/spf13/afero"

	"platform-config/internal/fragment"
)

// ErrDocumentFormat is returned when the source document cannot be parsed.
var ErrDocumentFormat = errors.New("malformed source document")

const (
	tagPreference = "preference"
	tagPlatform   = "platform"
	tagConfigFile = "config-file"
	tagName       = "name"
)

// Preference is a single name/value declaration.
type Preference struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// ConfigFile is a raw config-file block.
// Parent is the locator exactly as written; it is not normalized here.
type ConfigFile struct {
	Target   string
	Parent   string
	Children []*fragment.Node
}

// Reader extracts declarations from a parsed config.xml.
type Reader struct {
	root   *etree.Element
	common []Preference
	scoped map[string][]Preference
}

// Load reads and parses the source document at path.
func Load(fs afero.Fs, path string) (*Reader, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source document %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses source document bytes into a Reader.
// Anything before the first '<' (a byte order mark, for instance) is skipped.
func Parse(data []byte) (*Reader, error) {
	if i := bytes.IndexByte(data, '<'); i > 0 {
		data = data[i:]
	}

	doc := etree.NewDocument()

	err := doc.ReadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentFormat, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrDocumentFormat)
	}

	return &Reader{
		root:   root,
		common: preferencesOf(root),
		scoped: make(map[string][]Preference),
	}, nil
}

// Preferences returns the global preferences followed by the preferences
// declared inside the named platform. An empty platform returns global only.
func (r *Reader) Preferences(platform string) []Preference {
	prefs := make([]Preference, 0, len(r.common))
	prefs = append(prefs, r.common...)

	if platform == "" {
		return prefs
	}

	scoped, ok := r.scoped[platform]
	if !ok {
		for _, p := range r.platformElements(platform) {
			scoped = append(scoped, preferencesOf(p)...)
		}

		r.scoped[platform] = scoped
	}

	return append(prefs, scoped...)
}

// ConfigFiles returns the config-file blocks declared inside the named
// platform, in document order. Blocks outside a platform are never returned.
func (r *Reader) ConfigFiles(platform string) []ConfigFile {
	var blocks []ConfigFile

	for _, p := range r.platformElements(platform) {
		for _, cf := range p.SelectElements(tagConfigFile) {
			block := ConfigFile{
				Target: cf.SelectAttrValue("target", ""),
				Parent: cf.SelectAttrValue("parent", ""),
			}

			for _, child := range cf.ChildElements() {
				block.Children = append(block.Children, fragment.FromElement(child))
			}

			blocks = append(blocks, block)
		}
	}

	return blocks
}

// AppName returns the text of the top level name element.
func (r *Reader) AppName() string {
	name := r.root.SelectElement(tagName)
	if name == nil {
		return ""
	}

	return strings.TrimSpace(name.Text())
}

func (r *Reader) platformElements(platform string) []*etree.Element {
	var out []*etree.Element

	for _, p := range r.root.SelectElements(tagPlatform) {
		if p.SelectAttrValue("name", "") == platform {
			out = append(out, p)
		}
	}

	return out
}

func preferencesOf(e *etree.Element) []Preference {
	var prefs []Preference

	for _, p := range e.SelectElements(tagPreference) {
		prefs = append(prefs, Preference{
			Name:  p.SelectAttrValue("name", ""),
			Value: p.SelectAttrValue("value", ""),
		})
	}

	return prefs
}
