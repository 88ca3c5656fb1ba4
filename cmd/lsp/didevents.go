package lsp

import (
	"github.com/gluax-lang/lsp"

	"github.com/mage2-ls/mage2-ls/common"
)

func (h *Handler) DidOpen(p *lsp.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	h.fileCache[path] = p.TextDocument.Text
	return nil
}

func (h *Handler) DidChange(p *lsp.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	h.fileCache[path] = p.ContentChanges[0].Text
	return nil
}

func (h *Handler) DidClose(p *lsp.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	delete(h.fileCache, path)
	return nil
}

func (h *Handler) DidSave(p *lsp.DidSaveTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	if p.Text != nil {
		h.fileCache[path] = *p.Text
	}
	return nil
}
