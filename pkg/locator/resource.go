package locator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ReactPush/react-push-client/internal/helper"
)

// ResourceLookup finds a resource packaged with the application. Lookup
// returns an error wrapping ErrResourceNotFound when it is absent.
type ResourceLookup interface {
	Lookup(name, ext string) (string, error)
}

type LookupFunc func(name, ext string) (string, error)

func (f LookupFunc) Lookup(name, ext string) (string, error) {
	return f(name, ext)
}

// ResourceFileName joins name and ext. A leading dot on ext is optional.
func ResourceFileName(name, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name
	}

	return name + "." + ext
}

// DirResources looks resources up as plain files under each root, in order.
type DirResources struct {
	Roots []string
}

func (d DirResources) Lookup(name, ext string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: %w", ErrResourceNotFound, errEmptyResourceName)
	}

	file := ResourceFileName(name, ext)

	for _, root := range d.Roots {
		candidate := filepath.Join(root, file)
		if helper.FileExists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrResourceNotFound, file)
}

// ExecutableResources searches the usual packaging locations next to the
// running binary, including the Contents/Resources layout of app bundles.
func ExecutableResources() (DirResources, error) {
	dir, err := helper.ExecutableDir()
	if err != nil {
		return DirResources{}, fmt.Errorf("failed to locate executable: %w", err)
	}

	return DirResources{
		Roots: []string{
			filepath.Join(dir, "resources"),
			filepath.Join(dir, "..", "Resources"),
			filepath.Join(dir, "assets"),
			dir,
		},
	}, nil
}
