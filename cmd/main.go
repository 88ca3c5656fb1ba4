package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mage2-ls"),
		kong.Description("Language server for Magento 2 codebases."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Lsp     LspCmd     `cmd:"" help:"Run the LSP server on stdio."`
	Scan    ScanCmd    `cmd:"" help:"Scan a workspace and print the discovered modules."`
	Version VersionCmd `cmd:"" help:"Show version."`
}
