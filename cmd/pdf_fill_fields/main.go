package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/forms"
)

var (
	debugMode = flag.Bool("debug", false, "Enable diagnostic output during filling")
	help      = flag.Bool("help", false, "Show help message")
)

func init() {
	flag.Usage = printHelp
}

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() != 3 {
		fmt.Fprintf(os.Stderr, "Error: expected <pdf_file> <values_file> <output_file>\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath, valuesPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	values, err := forms.LoadValues(valuesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading values file: %v\n", err)
		os.Exit(1)
	}

	filler := forms.NewFiller(*debugMode)
	if err := filler.FillFile(pdfPath, outPath, values); err != nil {
		var unknown *forms.UnknownFieldsError
		if errors.As(err, &unknown) {
			// The error lists both the unknown IDs and the valid ones so the
			// values file can be fixed in one pass.
			fmt.Fprintf(os.Stderr, "%v\n", unknown)
		} else {
			fmt.Fprintf(os.Stderr, "Error filling fields: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Filled %d field(s), wrote %s\n", len(values), outPath)
}

func printHelp() {
	fmt.Println("pdf_fill_fields - Fill a PDF's AcroForm fields from a JSON values file")
	fmt.Println()
	fmt.Println("The values file is a JSON list of {\"field_id\": ..., \"value\": ...}")
	fmt.Println("objects. Checkbox and radio values must match the field's appearance")
	fmt.Println("state names (e.g. \"/Yes\"). All field IDs are validated before any")
	fmt.Println("value is written; an unknown ID aborts the whole operation.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -debug     Enable diagnostic output during filling")
	fmt.Println("  -help      Show this help message")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_fill_fields [OPTIONS] <pdf_file> <values_file> <output_file>")
}
