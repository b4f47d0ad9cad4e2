package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/fieldspec"
)

var (
	minEntryHeight = flag.Float64("min-entry-height", fieldspec.DefaultMinEntryHeight,
		"Minimum entry box height in pixels")
	help = flag.Bool("help", false, "Show help message")
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
		fmt.Fprintf(os.Stderr, "Error: field description file required\n\n")
		printUsage()
		os.Exit(2)
	}

	doc, err := fieldspec.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading field description: %v\n", err)
		os.Exit(2)
	}

	violations := doc.Validate(*minEntryHeight)
	if len(violations) == 0 {
		fmt.Printf("All %d field(s) passed geometry validation\n", len(doc.FormFields))
		return
	}

	fmt.Printf("Found %d geometry problem(s):\n", len(violations))
	for _, v := range violations {
		fmt.Printf("  %s\n", v)
	}
	os.Exit(1)
}

func printHelp() {
	fmt.Println("pdf_check_boxes - Validate a field description document's bounding boxes")
	fmt.Println()
	fmt.Println("Checks every field for a label box intersecting its entry box and for")
	fmt.Println("entry boxes too short to hold text. Coordinates are image pixels with")
	fmt.Println("a top-left origin; boxes are [left, top, right, bottom].")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Printf("  -min-entry-height   Minimum entry box height in pixels (default %g)\n",
		fieldspec.DefaultMinEntryHeight)
	fmt.Println("  -help               Show this help message")
	fmt.Println()
	fmt.Println("EXIT STATUS:")
	fmt.Println("  0 when the document is valid, 1 when violations exist,")
	fmt.Println("  2 on input errors.")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_check_boxes [OPTIONS] <fields_json>")
}
