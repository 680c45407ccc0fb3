// Command linksheet-batch extracts hyperlinks from every .xlsx workbook in
// a directory, writing one output workbook per input file plus a summary to
// stdout. Files are processed concurrently.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/linksheet/internal/domain"
	"github.com/linksheet/internal/service"
	"github.com/linksheet/pkg/dataflow"
)

type fileResult struct {
	path   string
	result domain.ExtractionResult
}

func main() {
	var (
		inDir   = flag.String("in", ".", "directory containing .xlsx files")
		outDir  = flag.String("out", "extracted", "directory for output workbooks")
		column  = flag.String("column", "Title", "header column to extract hyperlinks from")
		workers = flag.Int("workers", 4, "number of files processed concurrently")
	)
	flag.Parse()

	if err := run(context.Background(), *inDir, *outDir, *column, *workers); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, inDir, outDir, column string, workers int) error {
	svc, err := service.NewExcelLinkService()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		// "~$" prefixed files are Office lock files.
		if entry.IsDir() || !strings.HasSuffix(name, ".xlsx") || strings.HasPrefix(name, "~$") {
			continue
		}
		paths = append(paths, filepath.Join(inDir, name))
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .xlsx files found in %s", inDir)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	opts := domain.DefaultOptions()

	src := dataflow.From(ctx, paths...)
	results := dataflow.Map(ctx, src, func(path string) (fileResult, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileResult{}, fmt.Errorf("read %s: %w", path, err)
		}
		return fileResult{path: path, result: svc.ExtractLinks(ctx, data, column, opts)}, nil
	}, dataflow.WithWorkers(workers), dataflow.WithErrorHandler(func(err error) bool {
		fmt.Fprintln(os.Stderr, "skipped:", err)
		return true
	}))

	var processed, failed, totalLinks int
	err = dataflow.ForEach(ctx, results, func(fr fileResult) error {
		if fr.result.ErrorMessage != "" {
			failed++
			fmt.Fprintf(os.Stderr, "skipped %s: %s\n", fr.path, fr.result.ErrorMessage)
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(fr.path), ".xlsx") + "_links.xlsx"
		target := filepath.Join(outDir, name)
		if err := os.WriteFile(target, fr.result.OutputFile, 0644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		processed++
		totalLinks += fr.result.LinksFound
		fmt.Printf("%s: %d rows, %d links -> %s\n", fr.path, fr.result.TotalRows, fr.result.LinksFound, target)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("done: %d processed, %d skipped, %d links total\n", processed, failed, totalLinks)
	return nil
}
