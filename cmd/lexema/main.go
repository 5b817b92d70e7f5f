package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	lexema "github.com/reoring/lexema"
	"github.com/reoring/lexema/valid"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	root := &cobra.Command{
		Use:           "lexema",
		Short:         "Compile lexicon documents and validate values against them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(compileCmd(), validateCmd())
	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func compileCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "compile <file...>",
		Short: "Compile lexicon documents and report their definitions and diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := options(format)
			if err != nil {
				return err
			}
			for _, path := range args {
				doc, err := readDocumentFile(path)
				if err != nil {
					return err
				}
				dataTypes, diags, err := lexema.CompileDataTypes(doc, opt)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				endpoints, _, err := lexema.CompileEndpoints(doc, opt)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Info("compiled", "id", doc.ID,
					"dataTypes", sortedKeys(dataTypes), "endpoints", sortedKeys(endpoints))
				for _, d := range diags {
					logger.Warn(d.Message, "code", d.Code, "ref", d.Ref)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "sdk", "acceptance mode: sdk or wire")
	return cmd
}

func validateCmd() *cobra.Command {
	var (
		lexiconPath string
		defName     string
		format      string
	)
	cmd := &cobra.Command{
		Use:   "validate <value.json>",
		Short: "Validate a JSON value against one definition of a lexicon document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := options(format)
			if err != nil {
				return err
			}
			opt.ExternalRefs = lexema.KnownExternalRefs()
			doc, err := readDocumentFile(lexiconPath)
			if err != nil {
				return err
			}
			validators, diags, err := lexema.CompileDataTypes(doc, opt)
			if err != nil {
				return err
			}
			for _, d := range diags {
				logger.Warn(d.Message, "code", d.Code, "ref", d.Ref)
			}
			v, ok := validators[defName]
			if !ok {
				return fmt.Errorf("def %q not found in %s", defName, doc.ID)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var value any
			if err := json.Unmarshal(data, &value); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := v.Validate(context.Background(), value); err != nil {
				if iss, ok := valid.AsIssues(err); ok {
					for _, it := range iss {
						logger.Error(it.Message, "code", it.Code, "path", it.Path)
					}
				}
				return fmt.Errorf("value does not conform to %s", qualified(doc.ID, defName))
			}
			logger.Info("value conforms", "def", qualified(doc.ID, defName))
			return nil
		},
	}
	cmd.Flags().StringVarP(&lexiconPath, "lexicon", "l", "", "lexicon document file (json or yaml)")
	cmd.Flags().StringVarP(&defName, "def", "d", "main", "definition name to validate against")
	cmd.Flags().StringVar(&format, "format", "sdk", "acceptance mode: sdk or wire")
	_ = cmd.MarkFlagRequired("lexicon")
	return cmd
}

func options(format string) (lexema.Options, error) {
	switch format {
	case "sdk":
		return lexema.Options{Format: lexema.FormatSDK}, nil
	case "wire":
		return lexema.Options{Format: lexema.FormatWire}, nil
	default:
		return lexema.Options{}, fmt.Errorf("unknown format %q (want sdk or wire)", format)
	}
}

func readDocumentFile(path string) (*lexema.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return lexema.ReadDocumentYAML(data)
	default:
		return lexema.ReadDocument(data)
	}
}

func qualified(id, def string) string {
	if def == "main" {
		return id
	}
	return id + "#" + def
}

func sortedKeys[V any](m map[string]V) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
