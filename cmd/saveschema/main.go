package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/overworld/save"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema (stdout when empty)")
	flag.Parse()

	data, err := save.SchemaJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "saveschema: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if err := writeSchema(outPath, data); err != nil {
		fmt.Fprintf(os.Stderr, "saveschema: %v\n", err)
		os.Exit(1)
	}
}

func writeSchema(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
