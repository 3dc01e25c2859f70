// Package mapping holds the static preference map and the locator rules
// shared by the indexer and the merge engines.
//
// # Preference map
//
// A preference declared in config.xml only reaches a target file when the
// map has an entry for it on the current platform:
//
//	android:
//	  - name: android-installLocation
//	    target: AndroidManifest.xml
//	    parent: ./
//	    destination: android:installLocation
//
// The built-in table covers the android manifest attributes; ios has an empty
// table. Extra entries may be supplied through the tool settings and are
// merged once, when the map is built. The map is immutable afterwards.
//
// # Locators
//
// Parent locators are normalized so that "", "/*", "*/" and "./" all address
// the document root. The literal __cordovaMainActivity__ stands for the
// activity handling android.intent.action.MAIN.
package mapping
