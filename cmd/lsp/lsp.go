package lsp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	protocol "github.com/gluax-lang/lsp"

	"github.com/mage2-ls/mage2-ls/common"
	"github.com/mage2-ls/mage2-ls/config"
	"github.com/mage2-ls/mage2-ls/index"
)

func RunLSP() error {
	h := NewHandler()
	err := h.Serve(context.Background())
	// scan workers are joined only after the serve loop exits; the server
	// answers queries against a partial registry until they finish
	h.scans.Wait()
	return err
}

type Handler struct {
	*protocol.Server
	mu        sync.Mutex
	fileCache map[string]string // path -> open document content
	indexer   *index.Indexer
	scans     sync.WaitGroup
}

func NewHandler() *Handler {
	h := &Handler{
		fileCache: make(map[string]string),
		indexer:   index.New(),
	}
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if p.WorkspaceFolders == nil || len(*p.WorkspaceFolders) == 0 {
		return nil, fmt.Errorf("no workspace folder detected")
	}

	var roots []string
	for _, folder := range *p.WorkspaceFolders {
		root, err := common.URIToFilePath(folder.URI)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace folder: %w", err)
		}
		roots = append(roots, root)
	}
	log.Printf("workspace roots: %v", roots)

	cfg, err := config.Load(roots[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.FileName, err)
	}
	ignores, err := cfg.CompileIgnore()
	if err != nil {
		return nil, err
	}
	if cfg.PhpExtension != "" {
		h.indexer.SetClassExtension(cfg.PhpExtension)
	}
	for _, extra := range cfg.Paths {
		if !filepath.IsAbs(extra) {
			extra = filepath.Join(roots[0], extra)
		}
		roots = append(roots, extra)
	}

	opts := index.ScanOptions{Ignore: ignores}
	for _, root := range roots {
		h.startScan(root, opts)
	}

	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		DefinitionProvider: true,
	}}, nil
}

func (h *Handler) Initialized() error {
	log.Println("Initialized")
	return nil
}

// startScan indexes one root on its own worker. A failed root leaves the
// registry partial for that root; it never brings the server down.
func (h *Handler) startScan(root string, opts index.ScanOptions) {
	h.scans.Add(1)
	go func() {
		defer h.scans.Done()
		if err := h.indexer.ScanRoot(root, opts); err != nil {
			log.Printf("scan %s: %v", root, err)
		}
	}()
}
