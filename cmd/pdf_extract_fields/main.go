package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/forms"
)

var (
	outputPath = flag.String("o", "", "Write the field-info document to a file instead of stdout")
	debugMode  = flag.Bool("debug", false, "Enable diagnostic output during extraction")
	help       = flag.Bool("help", false, "Show help message")
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

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath := flag.Arg(0)
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", pdfPath)
		os.Exit(1)
	}

	reader := forms.NewCatalogReader(*debugMode)
	fields, err := reader.ReadFile(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting fields: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(fields); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing field-info document: %v\n", err)
		os.Exit(1)
	}

	if *outputPath != "" {
		fmt.Printf("Wrote %d field(s) to %s\n", len(fields), *outputPath)
	}
}

func printHelp() {
	fmt.Println("pdf_extract_fields - Extract a PDF's AcroForm fields as a JSON field-info document")
	fmt.Println()
	fmt.Println("Each entry carries the field's ID, page, rectangle in PDF points and")
	fmt.Println("discriminated type (text, checkbox, radio_group, choice) with the")
	fmt.Println("type-specific extras: checked/unchecked values for checkboxes, widget")
	fmt.Println("options for radio groups, option lists for choice fields.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -o         Output file (default: stdout)")
	fmt.Println("  -debug     Enable diagnostic output during extraction")
	fmt.Println("  -help      Show this help message")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_extract_fields [OPTIONS] <pdf_file>")
}
