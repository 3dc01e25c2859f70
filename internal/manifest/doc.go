// Package manifest merges override records into an AndroidManifest.xml tree.
//
// Parent resolution is a two-step strategy. The main activity placeholder
// resolves to the activity that declares the MAIN intent action. Any other
// locator is tried as a path from the root element first and, when that
// finds nothing, as the same path one level down ("*/" + locator). Records
// whose parent cannot be resolved are skipped, not failed.
//
// Preference records write an attribute on the parent. Fragment records
// upsert a child: the first child with the same tag is overwritten, except
// for uses-permission children, which are matched by android:name so that
// distinct permissions stay distinct.
package manifest
