package commands

import (
	"context"
	"flag"
	"fmt"

	ogcapiregistry "github.com/francbartoli/ogcapi-registry"
	"github.com/francbartoli/ogcapi-registry/report"
	"github.com/francbartoli/ogcapi-registry/strategy"
	"github.com/francbartoli/ogcapi-registry/validator"
)

type validateFlags struct {
	conformance stringSliceFlag
	format      string
	noWarnings  bool
	quiet       bool
}

func setupValidateFlags() (*flag.FlagSet, *validateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &validateFlags{}

	fs.Var(&flags.conformance, "conformance", "conformance class URI the implementation declares (repeatable)")
	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.noWarnings, "no-warnings", false, "suppress warnings and informational notes (only show critical errors)")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress output, use the exit code only")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: ogcapi-registry validate [flags] <file|url|->\n\n")
		_, _ = fmt.Fprintf(output, "Validate an OpenAPI document as an OGC API implementation.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  ogcapi-registry validate api.yaml\n")
		_, _ = fmt.Fprintf(output, "  ogcapi-registry validate --conformance http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core api.json\n")
		_, _ = fmt.Fprintf(output, "  ogcapi-registry validate --format json https://demo.example.com/api\n")
	}

	return fs, flags
}

// Validate handles the validate command. It returns ErrNotCompliant when
// validation completes but the document fails its conformance profile.
func Validate(args []string) error {
	fs, flags := setupValidateFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or URL")
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	doc, err := ReadDocument(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}

	structure := validator.ValidateStructure(doc, "")
	var r report.Report
	if structure.HasCriticalErrors() {
		r = report.FromResult(structure)
	} else {
		var conformanceArg any
		if len(flags.conformance) > 0 {
			conformanceArg = []string(flags.conformance)
		}
		result := strategy.Validate(doc, conformanceArg)
		result.Merge(structure)
		r = report.FromResult(result)
	}

	if flags.noWarnings {
		r.WarningErrors = nil
		r.InfoErrors = nil
		r.Warnings = nil
	}

	if !flags.quiet {
		if flags.format == FormatText {
			printValidateText(fs.Arg(0), r)
		} else if err := OutputStructured(r, flags.format); err != nil {
			return err
		}
	}

	if !r.Compliant {
		return ErrNotCompliant
	}
	return nil
}

func printValidateText(source string, r report.Report) {
	fmt.Printf("OGC API Conformance Validator\n")
	fmt.Printf("=============================\n\n")
	fmt.Printf("ogcapi-registry version: %s\n", ogcapiregistry.Version())
	fmt.Printf("Document: %s\n", source)
	if r.ValidatedAgainst != "" {
		fmt.Printf("Validated against: %s\n", r.ValidatedAgainst)
	}
	fmt.Printf("Valid: %t\n", r.Valid)
	fmt.Printf("Compliant: %t\n\n", r.Compliant)

	printItems := func(header string, items []report.Item) {
		if len(items) == 0 {
			return
		}
		fmt.Printf("%s:\n", header)
		for _, item := range items {
			fmt.Printf("  - [%s] %s", item.Severity, item.Message)
			if item.Path != "" {
				fmt.Printf(" (%s)", item.Path)
			}
			fmt.Println()
			if item.ConformanceClass != "" {
				fmt.Printf("    conformance: %s\n", item.ConformanceClass)
			}
		}
		fmt.Println()
	}

	printItems("Critical Errors", r.CriticalErrors)
	printItems("Warnings", r.WarningErrors)
	printItems("Informational", r.InfoErrors)
	printItems("Advisory Notes", r.Warnings)

	fmt.Printf("Summary: %d critical, %d warning, %d info (%d total)\n",
		r.Summary.Critical, r.Summary.Warning, r.Summary.Info, r.Summary.Total)
}
