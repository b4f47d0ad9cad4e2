package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/forms"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	help         = flag.Bool("help", false, "Show help message")
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
		os.Exit(2)
	}

	pdfPath := flag.Arg(0)
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", pdfPath)
		os.Exit(2)
	}

	fillable, fields, err := forms.HasFillableFields(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error inspecting PDF: %v\n", err)
		os.Exit(2)
	}

	if *outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(map[string]any{
			"path":        pdfPath,
			"fillable":    fillable,
			"field_count": len(fields),
		})
	} else if fillable {
		fmt.Printf("%s has %d fillable form field(s)\n", pdfPath, len(fields))
		if *verbose {
			for _, f := range fields {
				fmt.Printf("  %s (page %d, %s)\n", f.FieldID, f.Page, f.Type)
			}
		}
	} else {
		fmt.Printf("%s has no fillable form fields\n", pdfPath)
	}

	if !fillable {
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("pdf_check_fields - Detect whether a PDF has fillable AcroForm fields")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format    Output format: text (default), json")
	fmt.Println("  -verbose   List every detected field")
	fmt.Println("  -help      Show this help message")
	fmt.Println()
	fmt.Println("EXIT STATUS:")
	fmt.Println("  0 when fillable fields are present, 1 when none are,")
	fmt.Println("  2 on input errors.")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_check_fields [OPTIONS] <pdf_file>")
}
