// Package locator picks the JavaScript bundle a host application loads at
// startup: the bundle recorded in the marker file by the over-the-air
// downloader when it is still on disk, or the default bundle packaged with
// the application otherwise.
package locator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ReactPush/react-push-client/internal/helper"
)

const (
	// BundleDirName is the directory under the data dir holding downloaded
	// bundles and the marker file.
	BundleDirName = "ReactPushBundles"

	// MarkerFileName names the file recording the active bundle path. The
	// downloader must replace it atomically (write a temp file, then
	// rename); the locator only ever reads it.
	MarkerFileName = "ReactPushBundlePath.txt"
)

// Only this much of a marker is read; a single path never needs more.
const maxMarkerSize = 4096

type Source string

const (
	SourceDownloaded Source = "downloaded"
	SourceDefault    Source = "default"
)

// Reference is the outcome of a resolution.
type Reference struct {
	Path   string
	Source Source
}

func (r Reference) IsDownloaded() bool {
	return r.Source == SourceDownloaded
}

type Locator struct {
	dataDir        string
	bundleDirName  string
	markerFileName string
	defaults       ResourceLookup
	log            *slog.Logger
}

type Option func(*Locator)

func WithBundleDirName(name string) Option {
	return func(l *Locator) {
		if name != "" {
			l.bundleDirName = name
		}
	}
}

func WithMarkerFileName(name string) Option {
	return func(l *Locator) {
		if name != "" {
			l.markerFileName = name
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Locator) {
		if log != nil {
			l.log = log
		}
	}
}

// New returns a Locator whose bundle directory lives under dataDir and whose
// fallback is resolved through defaults.
func New(dataDir string, defaults ResourceLookup, opts ...Option) *Locator {
	l := &Locator{
		dataDir:        dataDir,
		bundleDirName:  BundleDirName,
		markerFileName: MarkerFileName,
		defaults:       defaults,
		log:            slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// DefaultDataDir returns the per-user application support directory for
// appID.
func DefaultDataDir(appID string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	return filepath.Join(configDir, appID), nil
}

func (l *Locator) BundleDirectory() string {
	return filepath.Join(l.dataDir, l.bundleDirName)
}

func (l *Locator) MarkerFilePath() string {
	return filepath.Join(l.BundleDirectory(), l.markerFileName)
}

// DownloadedBundlePath returns the path recorded in the marker file if that
// file still exists. It never falls back to the default resource.
func (l *Locator) DownloadedBundlePath() (string, bool) {
	markerPath := l.MarkerFilePath()

	raw, err := readMarker(markerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Debug("No bundle marker found", "marker", markerPath)
		} else {
			l.log.Error("Error reading bundle marker", "marker", markerPath, "error", err)
		}

		return "", false
	}

	bundlePath := parseMarker(raw)
	if bundlePath == "" {
		l.log.Debug("Bundle marker is empty", "marker", markerPath)
		return "", false
	}

	if !filepath.IsAbs(bundlePath) {
		bundlePath = filepath.Join(l.BundleDirectory(), bundlePath)
	}

	if !helper.FileExists(bundlePath) {
		l.log.Warn("Bundle file not found at marker path", "path", bundlePath)
		return "", false
	}

	return bundlePath, true
}

func (l *Locator) HasDownloadedBundle() bool {
	_, ok := l.DownloadedBundlePath()
	return ok
}

// Resolve returns the downloaded bundle when there is a valid one, and the
// packaged default resource for name and ext otherwise. A missing default is
// the only error.
func (l *Locator) Resolve(name, ext string) (Reference, error) {
	if path, ok := l.DownloadedBundlePath(); ok {
		l.log.Debug("Using downloaded bundle", "path", path)
		return Reference{Path: path, Source: SourceDownloaded}, nil
	}

	resource := ResourceFileName(name, ext)

	if name == "" {
		return Reference{}, ErrorDefaultResourceMissing(resource, errEmptyResourceName)
	}

	if l.defaults == nil {
		return Reference{}, ErrorDefaultResourceMissing(resource, errNoResourceLookup)
	}

	path, err := l.defaults.Lookup(name, ext)
	if err != nil {
		l.log.Error("Default bundle resource missing", "resource", resource, "error", err)
		return Reference{}, ErrorDefaultResourceMissing(resource, err)
	}

	l.log.Debug("Using default bundle", "path", path)

	return Reference{Path: path, Source: SourceDefault}, nil
}

func (l *Locator) ResolveBundlePath(name, ext string) (string, error) {
	ref, err := l.Resolve(name, ext)
	if err != nil {
		return "", err
	}

	return ref.Path, nil
}

// ResolveBundlePathOr returns the downloaded bundle path, or defaultName
// unchanged so the host framework can load its own packaged bundle.
func (l *Locator) ResolveBundlePathOr(defaultName string) string {
	if path, ok := l.DownloadedBundlePath(); ok {
		return path
	}

	return defaultName
}

func readMarker(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, maxMarkerSize))
}
