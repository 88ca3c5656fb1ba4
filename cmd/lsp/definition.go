package lsp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gluax-lang/lsp"

	"github.com/mage2-ls/mage2-ls/common"
	"github.com/mage2-ls/mage2-ls/m2"
	"github.com/mage2-ls/mage2-ls/php"
	"github.com/mage2-ls/mage2-ls/script"
	"github.com/mage2-ls/mage2-ls/xml"
)

// Definition answers a textDocument/definition query. Every resolution
// failure is absorbed into an empty result; the client never sees an error
// for a routine "nothing found".
func (h *Handler) Definition(p *lsp.DefinitionParams) ([]lsp.Location, error) {
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return []lsp.Location{}, nil
	}

	source, ok := h.documentSource(path)
	if !ok {
		return []lsp.Location{}, nil
	}

	ref, ok := extractAt(path, source, p.Position)
	if !ok {
		return []lsp.Location{}, nil
	}

	span, ok := h.indexer.Definition(ref)
	if !ok {
		return []lsp.Location{}, nil
	}
	return []lsp.Location{span.ToLocation()}, nil
}

// documentSource prefers the open-document cache over the file on disk.
func (h *Handler) documentSource(path string) ([]byte, bool) {
	h.mu.Lock()
	text, ok := h.fileCache[path]
	h.mu.Unlock()
	if ok {
		return []byte(text), true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// extractAt dispatches to the reference extractor for the file type.
func extractAt(path string, source []byte, pos lsp.Position) (m2.Reference, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".php", ".phtml":
		return php.Extract(source, pos)
	case ".xml":
		return xml.Extract(source, pos)
	case ".js":
		return script.ExtractJS(source, pos)
	case ".ts":
		return script.ExtractTS(source, pos)
	}
	return m2.Reference{}, false
}
