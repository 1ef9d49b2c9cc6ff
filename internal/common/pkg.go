package common

import (
	"path"
	"reflect"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// TypeLabel returns a short, human-readable label for a type, qualified by
// the package alias for named types ("store.Customer", "[]int", "*store.Order").
// Returns "<nil>" for a nil type.
func TypeLabel(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Name() != "" && t.PkgPath() != "" {
		return PkgAlias(t.PkgPath()) + "." + t.Name()
	}

	return t.String()
}
