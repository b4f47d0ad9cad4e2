package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/fieldspec"
	"github.com/formweld/pdf-form-tools/internal/overlay"
)

var (
	pageNumber  = flag.Int("page", 1, "1-based page the image shows")
	strokeWidth = flag.Int("stroke", 2, "Outline width in pixels")
	withLabels  = flag.Bool("labels", false, "Draw each field's description above its entry box")
	help        = flag.Bool("help", false, "Show help message")
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
		fmt.Fprintf(os.Stderr, "Error: expected <image_png> <fields_json> <output_png>\n\n")
		printUsage()
		os.Exit(1)
	}

	imagePath, specPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	doc, err := fieldspec.Load(specPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading field description: %v\n", err)
		os.Exit(1)
	}

	counts, err := overlay.DrawBoxesFile(imagePath, outPath, doc, *pageNumber, *strokeWidth, *withLabels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error drawing boxes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Drew %d entry box(es) and %d label box(es), wrote %s\n",
		counts.Entries, counts.Labels, outPath)
}

func printHelp() {
	fmt.Println("pdf_validation_image - Draw a field description's boxes onto a page image")
	fmt.Println()
	fmt.Println("Entry boxes are outlined in red, label boxes in blue, so box placement")
	fmt.Println("can be checked against the rendered page before filling.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -page      1-based page the image shows (default 1)")
	fmt.Println("  -stroke    Outline width in pixels (default 2)")
	fmt.Println("  -labels    Draw each field's description above its entry box")
	fmt.Println("  -help      Show this help message")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_validation_image [OPTIONS] <image_png> <fields_json> <output_png>")
}
