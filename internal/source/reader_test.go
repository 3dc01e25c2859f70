package source

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `<?xml version='1.0' encoding='utf-8'?>
<widget id="io.example.app" version="1.0.0" xmlns="http://www.w3.org/ns/widgets" xmlns:android="http://schemas.android.com/apk/res/android">
    <name>HelloApp</name>
    <preference name="Orientation" value="portrait" />
    <preference name="android-installLocation" value="internalOnly" />
    <config-file target="AndroidManifest.xml" parent="/*">
        <ignored-outside-platform />
    </config-file>
    <platform name="android">
        <preference name="android-installLocation" value="auto" />
        <preference name="android-minSdkVersion" value="19" />
        <config-file target="AndroidManifest.xml" parent="/*">
            <uses-permission android:name="android.permission.CAMERA" />
        </config-file>
        <config-file target="AndroidManifest.xml" parent="application">
            <meta-data android:name="key" android:value="v" />
        </config-file>
    </platform>
    <platform name="ios">
        <config-file target="*-Info.plist" parent="UISupportedInterfaceOrientations">
            <array>
                <string>UIInterfaceOrientationPortrait</string>
            </array>
        </config-file>
    </platform>
</widget>
`

func TestParse_Preferences(t *testing.T) {
	r, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	t.Run("global only", func(t *testing.T) {
		prefs := r.Preferences("")
		assert.Equal(t, []Preference{
			{Name: "Orientation", Value: "portrait"},
			{Name: "android-installLocation", Value: "internalOnly"},
		}, prefs)
	})

	t.Run("platform appended after global", func(t *testing.T) {
		prefs := r.Preferences("android")
		require.Len(t, prefs, 4)
		assert.Equal(t, "Orientation", prefs[0].Name)
		assert.Equal(t, Preference{Name: "android-installLocation", Value: "auto"}, prefs[2])
		assert.Equal(t, "android-minSdkVersion", prefs[3].Name)
	})

	t.Run("cached lists are not aliased", func(t *testing.T) {
		first := r.Preferences("android")
		first[0].Value = "mutated"

		again := r.Preferences("android")
		assert.Equal(t, "portrait", again[0].Value)
	})

	t.Run("unknown platform", func(t *testing.T) {
		assert.Len(t, r.Preferences("windows"), 2)
	})
}

func TestParse_ConfigFiles(t *testing.T) {
	r, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	android := r.ConfigFiles("android")
	require.Len(t, android, 2)
	assert.Equal(t, "AndroidManifest.xml", android[0].Target)
	assert.Equal(t, "/*", android[0].Parent)
	require.Len(t, android[0].Children, 1)
	assert.Equal(t, "uses-permission", android[0].Children[0].Tag)
	assert.Equal(t, "application", android[1].Parent)

	ios := r.ConfigFiles("ios")
	require.Len(t, ios, 1)
	assert.Equal(t, "*-Info.plist", ios[0].Target)
	require.Len(t, ios[0].Children, 1)
	assert.Equal(t, "array", ios[0].Children[0].Tag)

	assert.Empty(t, r.ConfigFiles("browser"))
}

func TestParse_AppName(t *testing.T) {
	r, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "HelloApp", r.AppName())

	r, err = Parse([]byte(`<widget/>`))
	require.NoError(t, err)
	assert.Empty(t, r.AppName())
}

func TestParse_SkipsByteOrderMark(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<widget><name>Bom</name></widget>`)...)

	r, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Bom", r.AppName())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<widget><name>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentFormat)

	_, err = Parse([]byte(``))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentFormat)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/config.xml", []byte(sampleConfig), 0o644))

	r, err := Load(fs, "/project/config.xml")
	require.NoError(t, err)
	assert.Equal(t, "HelloApp", r.AppName())

	_, err = Load(fs, "/project/missing.xml")
	require.Error(t, err)
}
