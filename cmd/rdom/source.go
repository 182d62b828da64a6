package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dhamidi/rdom/config"
	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/frontend/csharp"
	"github.com/spf13/cobra"
)

// loadConfig reads the file named by --config, or the nearest .rdom.yaml.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.Find(".")
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

type document struct {
	path string
	text []byte
	file *csharp.File
	root *dom.Root
}

// load reads path and builds its graph with p.
func load(ctx context.Context, p *csharp.Parser, path string) (*document, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	f, err := p.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	root, err := dom.CreateFrom(f.Syntax, f.Symbols)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &document{path: path, text: text, file: f, root: root}, nil
}
