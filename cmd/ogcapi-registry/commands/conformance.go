package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/francbartoli/ogcapi-registry/client"
	"github.com/francbartoli/ogcapi-registry/report"
)

type conformanceFlags struct {
	from   string
	format string
}

func setupConformanceFlags() (*flag.FlagSet, *conformanceFlags) {
	fs := flag.NewFlagSet("conformance", flag.ContinueOnError)
	flags := &conformanceFlags{}

	fs.StringVar(&flags.from, "from", "", "URL of a /conformance endpoint to read the conformsTo array from")
	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: ogcapi-registry conformance [flags] [uri ...]\n\n")
		_, _ = fmt.Fprintf(output, "Analyze OGC API conformance class URIs and group them by specification.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  ogcapi-registry conformance http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core\n")
		_, _ = fmt.Fprintf(output, "  ogcapi-registry conformance --from https://demo.example.com/conformance\n")
	}

	return fs, flags
}

// Conformance handles the conformance command.
func Conformance(args []string) error {
	fs, flags := setupConformanceFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	uris := fs.Args()
	if len(uris) == 0 && flags.from != "" {
		doc, _, err := client.New().Fetch(context.Background(), flags.from)
		if err != nil {
			return err
		}
		uris = doc.ConformsTo()
	}
	if len(uris) == 0 {
		fs.Usage()
		return fmt.Errorf("conformance command requires URIs or --from")
	}

	analysis := report.AnalyzeConformance(uris)
	if flags.format != FormatText {
		return OutputStructured(analysis, flags.format)
	}

	fmt.Printf("Conformance Analysis\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("Declared classes: %d\n\n", analysis.Total)
	for _, spec := range analysis.Specifications {
		fmt.Printf("%s\n", spec.Specification)
		for _, c := range spec.Classes {
			marker := " "
			if c.Core {
				marker = "*"
			}
			fmt.Printf("  %s %s (%s)\n", marker, c.Title, c.URI)
		}
		fmt.Println()
	}
	if len(analysis.Unknown) > 0 {
		fmt.Printf("Unrecognized:\n")
		for _, uri := range analysis.Unknown {
			fmt.Printf("  - %s\n", uri)
		}
	}
	return nil
}
