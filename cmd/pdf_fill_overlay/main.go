package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/fieldspec"
	"github.com/formweld/pdf-form-tools/internal/overlay"
)

var (
	fontSize  = flag.Float64("font-size", fieldspec.DefaultFontSize, "Font size for fields that omit font_size")
	fontColor = flag.String("font-color", fieldspec.DefaultFontColor, "Font color (RRGGBB hex) for fields that omit font_color")
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
		fmt.Fprintf(os.Stderr, "Error: expected <pdf_file> <fields_json> <output_file>\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath, specPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	doc, err := fieldspec.LoadWithDefaults(specPath, *fontSize, *fontColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading field description: %v\n", err)
		os.Exit(1)
	}

	drawn, err := overlay.FillText(pdfPath, outPath, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stamping text: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stamped %d field(s), wrote %s\n", drawn, outPath)
}

func printHelp() {
	fmt.Println("pdf_fill_overlay - Stamp entry text onto a PDF without fillable fields")
	fmt.Println()
	fmt.Println("Each field's entry_text is drawn at its entry box's bottom-left corner,")
	fmt.Println("with the box coordinates reconciled from image-pixel space (top-left")
	fmt.Println("origin) to PDF points (bottom-left origin) using the page descriptors")
	fmt.Println("in the field description document.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Printf("  -font-size    Default font size in points (default %g)\n", fieldspec.DefaultFontSize)
	fmt.Printf("  -font-color   Default font color as RRGGBB hex (default %s)\n", fieldspec.DefaultFontColor)
	fmt.Println("  -help         Show this help message")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_fill_overlay [OPTIONS] <pdf_file> <fields_json> <output_file>")
}
