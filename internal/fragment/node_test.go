package fragment

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRoot(t *testing.T, xml string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	require.NotNil(t, doc.Root())

	return doc.Root()
}

func TestFromElement(t *testing.T) {
	root := parseRoot(t, `<uses-permission android:name="android.permission.CAMERA" android:maxSdkVersion="15">
		<meta foo="bar">text</meta>
	</uses-permission>`)

	n := FromElement(root)

	assert.Equal(t, "uses-permission", n.Tag)
	require.Len(t, n.Attrs, 2)
	assert.Equal(t, Attr{Key: "android:name", Value: "android.permission.CAMERA"}, n.Attrs[0])
	assert.Equal(t, Attr{Key: "android:maxSdkVersion", Value: "15"}, n.Attrs[1])

	name, ok := n.Attr("android:name")
	assert.True(t, ok)
	assert.Equal(t, "android.permission.CAMERA", name)

	_, ok = n.Attr("android:missing")
	assert.False(t, ok)

	require.Len(t, n.Children, 1)
	assert.Equal(t, "meta", n.Children[0].Tag)
	assert.Equal(t, "text", n.Children[0].TrimmedText())
}

func TestFromElement_DoesNotMutateSource(t *testing.T) {
	root := parseRoot(t, `<array><string>a</string></array>`)

	n := FromElement(root)
	n.Children[0].Text = "changed"

	assert.Equal(t, "a", root.SelectElement("string").Text())
}

func TestCopyInto_ReplacesContent(t *testing.T) {
	target := parseRoot(t, `<supports-screens android:smallScreens="true" old="x"><child/>stale</supports-screens>`)

	n := &Node{
		Tag:   "supports-screens",
		Attrs: []Attr{{Key: "android:smallScreens", Value: "false"}},
		Children: []*Node{
			{Tag: "inner", Text: "hello"},
		},
	}
	n.CopyInto(target)

	assert.Equal(t, "false", target.SelectAttrValue("android:smallScreens", ""))
	assert.Nil(t, target.SelectAttr("old"))
	assert.Nil(t, target.SelectElement("child"))
	require.NotNil(t, target.SelectElement("inner"))
	assert.Equal(t, "hello", target.SelectElement("inner").Text())
}

func TestElement_DropsWhitespaceText(t *testing.T) {
	n := &Node{Tag: "intent-filter", Text: "\n    ", Children: []*Node{{Tag: "action"}}}

	e := n.Element()

	assert.Equal(t, "intent-filter", e.Tag)
	assert.Empty(t, e.Text())
	assert.Len(t, e.ChildElements(), 1)
}
