package manifest

import (
	"fmt"

	"github.com/beevik/etree"

	"platform-config/internal/diagnostic"
	"platform-config/internal/mapping"
)

// mainActivityPath finds the activity owning the launcher intent filter.
const mainActivityPath = "application/activity/intent-filter/action[@android:name='android.intent.action.MAIN']/../.."

// Resolution is the outcome of resolving a parent locator.
// Exactly one of Element and Skip is set.
type Resolution struct {
	Element *etree.Element
	Skip    diagnostic.Reason
	Detail  string
}

// Found reports whether the locator resolved to an element.
func (r Resolution) Found() bool {
	return r.Element != nil
}

func found(e *etree.Element) Resolution {
	return Resolution{Element: e}
}

func skipped(reason diagnostic.Reason, format string, args ...any) Resolution {
	return Resolution{Skip: reason, Detail: fmt.Sprintf(format, args...)}
}

// Resolver resolves parent locators against one manifest root.
type Resolver struct {
	root         *etree.Element
	mainActivity *etree.Element
}

// NewResolver creates a resolver for root. The main activity is looked up once.
func NewResolver(root *etree.Element) *Resolver {
	return &Resolver{
		root:         root,
		mainActivity: root.FindElement(mainActivityPath),
	}
}

// Resolve resolves a normalized locator.
func (r *Resolver) Resolve(locator string) Resolution {
	if locator == mapping.MainActivityLocator {
		if r.mainActivity == nil {
			return skipped(diagnostic.ReasonMainActivityNotFound, "no activity declares the MAIN intent action")
		}

		return found(r.mainActivity)
	}

	if mapping.IsRoot(locator) {
		return found(r.root)
	}

	// Direct path from the root first
	direct, err := etree.CompilePath(locator)
	if err != nil {
		return skipped(diagnostic.ReasonInvalidLocator, "invalid locator: %v", err)
	}

	if e := r.root.FindElementPath(direct); e != nil {
		return found(e)
	}

	// Then one level deeper, for locators written relative to a child of the root
	deeper, err := etree.CompilePath("*/" + locator)
	if err != nil {
		return skipped(diagnostic.ReasonInvalidLocator, "invalid locator: %v", err)
	}

	if e := r.root.FindElementPath(deeper); e != nil {
		return found(e)
	}

	return skipped(diagnostic.ReasonParentNotFound, "no element matches the locator")
}
