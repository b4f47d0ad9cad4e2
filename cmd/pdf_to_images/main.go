package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/render"
)

var (
	dpi  = flag.Float64("dpi", render.DefaultDPI, "Rasterization resolution in DPI")
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

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected <pdf_file> <output_dir>\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath, outDir := flag.Arg(0), flag.Arg(1)

	images, err := render.Pages(pdfPath, outDir, *dpi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering pages: %v\n", err)
		os.Exit(1)
	}

	for _, img := range images {
		fmt.Printf("Page %d: %s (%dx%d)\n", img.PageNumber, img.Path, img.Width, img.Height)
	}
	fmt.Printf("Rendered %d page(s) into %s\n", len(images), outDir)
}

func printHelp() {
	fmt.Println("pdf_to_images - Rasterize every page of a PDF to PNG images")
	fmt.Println()
	fmt.Println("Pages are written as page_1.png, page_2.png, ... into the output")
	fmt.Println("directory, which is created if missing.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Printf("  -dpi       Rasterization resolution (default %d)\n", render.DefaultDPI)
	fmt.Println("  -help      Show this help message")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_to_images [OPTIONS] <pdf_file> <output_dir>")
}
