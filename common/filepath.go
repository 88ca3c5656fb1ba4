package common

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

func FilePathToURI(path string) string {
	uri := filepath.ToSlash(path)
	if runtime.GOOS == "windows" {
		// Windows file URIs need three slashes: file:///C:/path
		uri = "file:///" + uri
	} else {
		// Unix-like systems: file:///path
		uri = "file://" + uri
	}
	return uri
}

// URIToFilePath converts a file:// URI into an **absolute** filesystem path.
func URIToFilePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported scheme %q (must be file)", u.Scheme)
	}

	// URL-unescape the path (e.g. %20 -> space)
	p, err := url.PathUnescape(u.Path)
	if err != nil {
		return "", fmt.Errorf("cannot unescape path: %w", err)
	}

	// On Windows, strip the leading slash before the drive letter
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(p, "/") && len(p) >= 3 && p[2] == ':' {
			p = p[1:]
		}
	}

	// Convert slashes to OS-specific separators
	return filepath.FromSlash(p), nil
}
