package lsp

import "github.com/gluax-lang/lsp"

// Only definitions are advertised in the server capabilities; the remaining
// handler methods answer with "nothing".

func (h *Handler) Hover(p *lsp.HoverParams) (*lsp.Hover, error) {
	return nil, nil
}

func (h *Handler) Complete(p *lsp.CompletionParams) (*lsp.CompletionList, error) {
	return nil, nil
}

func (h *Handler) InlayHint(p *lsp.InlayHintParams) ([]lsp.InlayHint, error) {
	return nil, nil
}

func (h *Handler) References(p *lsp.ReferenceParams) ([]lsp.Location, error) {
	return nil, nil
}
