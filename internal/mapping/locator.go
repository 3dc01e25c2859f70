package mapping

// Reserved locators.
const (
	// RootLocator addresses the document root element.
	RootLocator = "./"
	// MainActivityLocator addresses the activity holding the MAIN intent filter.
	MainActivityLocator = "__cordovaMainActivity__"
)

// NormalizeLocator maps the spellings of "document root" to RootLocator.
// An absent locator, "/*" and "*/" are all the root. Other locators are
// returned unchanged.
func NormalizeLocator(parent string) string {
	switch parent {
	case "", "/*", "*/", RootLocator:
		return RootLocator
	default:
		return parent
	}
}

// IsRoot reports whether a normalized locator addresses the document root.
func IsRoot(locator string) bool {
	return locator == RootLocator
}

// BlockKey is the identity of a config-file block: target and normalized parent.
func BlockKey(target, parent string) string {
	return target + "|" + NormalizeLocator(parent)
}
