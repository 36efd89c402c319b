package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jwebster45206/string-extractor/internal/config"
	"github.com/jwebster45206/string-extractor/internal/logger"
	"github.com/jwebster45206/string-extractor/pkg/condition"
	"github.com/jwebster45206/string-extractor/pkg/translation"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.json> [file.json...]\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Setup(cfg)

	dumper := NewQueryDumper(log, cfg.ShowOrigin)
	for _, filename := range os.Args[1:] {
		if err := dumper.DumpFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
			os.Exit(1)
		}
	}

	if err := dumper.Write(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

// QueryDumper collects query strings from the condition fields of game data files
type QueryDumper struct {
	log        *slog.Logger
	collector  *translation.Collector
	sink       condition.Sink
	showOrigin bool
	files      int
}

func NewQueryDumper(log *slog.Logger, showOrigin bool) *QueryDumper {
	c := translation.NewCollector()
	return &QueryDumper{
		log:        log,
		collector:  c,
		sink:       translation.NewLogSink(c, log),
		showOrigin: showOrigin,
	}
}

// DumpFile reads one JSON file holding an object or an array of objects.
func (d *QueryDumper) DumpFile(filename string) error {
	if !strings.EqualFold(filepath.Ext(filename), ".json") {
		return fmt.Errorf("input file must have .json extension: %s", filepath.Base(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("file %s contains invalid JSON: %w", filename, err)
	}

	log := logger.WithFile(d.log, filename)
	before := d.collector.Len()

	if err := d.dumpObjects(doc, condition.Origin(filename)); err != nil {
		return fmt.Errorf("file %s: %w", filename, err)
	}

	d.files++
	log.Info("Extracted query strings", "count", d.collector.Len()-before)
	return nil
}

func (d *QueryDumper) dumpObjects(doc any, origin condition.Origin) error {
	objects, ok := doc.([]any)
	if !ok {
		objects = []any{doc}
	}

	for _, o := range objects {
		obj, ok := o.(map[string]any)
		if !ok {
			continue
		}
		if err := d.dumpObject(obj, origin); err != nil {
			return err
		}
	}
	return nil
}

// dumpObject walks the object's own condition, then the conditions on its
// dialogue responses.
func (d *QueryDumper) dumpObject(obj map[string]any, origin condition.Origin) error {
	if cond, ok := obj["condition"]; ok {
		if err := condition.WalkValue(cond, origin, d.sink); err != nil {
			return err
		}
	}

	responses, ok := obj["responses"].([]any)
	if !ok {
		return nil
	}
	for _, r := range responses {
		resp, ok := r.(map[string]any)
		if !ok {
			continue
		}
		if cond, ok := resp["condition"]; ok {
			if err := condition.WalkValue(cond, origin, d.sink); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write prints every collected string followed by a summary line
func (d *QueryDumper) Write(w io.Writer) error {
	for _, e := range d.collector.Entries() {
		if _, err := fmt.Fprintln(w, d.formatEntry(e)); err != nil {
			return err
		}
	}

	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "%d query strings extracted from %d files\n", d.collector.Len(), d.files)
	return err
}

func (d *QueryDumper) formatEntry(e translation.Entry) string {
	var b strings.Builder
	if d.showOrigin {
		b.WriteString(string(e.Origin))
		b.WriteString(": ")
	}
	b.WriteString(e.Comment)
	b.WriteString(": ")
	b.WriteString(e.Text.Str)
	if e.Text.HasPlural() {
		fmt.Fprintf(&b, " / %s", e.Text.StrPl)
	}
	if e.Text.Ctxt != "" {
		fmt.Fprintf(&b, " (ctxt: %s)", e.Text.Ctxt)
	}
	return b.String()
}
