package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/pageops"
)

var (
	pagesExpr = flag.String("pages", "", "Page selection like '1-3,5'; extracts into a single PDF instead of splitting")
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

	if flag.NArg() != 2 {
		if *pagesExpr != "" {
			fmt.Fprintf(os.Stderr, "Error: expected <pdf_file> <output_file>\n\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: expected <pdf_file> <output_dir>\n\n")
		}
		printUsage()
		os.Exit(1)
	}

	input, output := flag.Arg(0), flag.Arg(1)

	if *pagesExpr != "" {
		selected, warnings, err := pageops.ExtractPages(input, output, *pagesExpr)
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting pages: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Extracted %d page(s) into %s\n", selected, output)
		return
	}

	pages, err := pageops.PageCount(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if err := pageops.SplitAll(input, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error splitting: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Split %d page(s) into %s\n", pages, output)
}

func printHelp() {
	fmt.Println("pdf_split - Split a PDF into single-page files, or extract a page selection")
	fmt.Println()
	fmt.Println("Without -pages, every page is written to its own PDF in the output")
	fmt.Println("directory. With -pages, the selected pages are copied into a single")
	fmt.Println("output PDF in the order given; duplicates are preserved, spans that")
	fmt.Println("run past the last page are clamped, and out-of-range single pages")
	fmt.Println("are dropped with a warning.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -pages     1-based page selection, e.g. '1-3,5,2'")
	fmt.Println("  -help      Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  pdf_split report.pdf pages/")
	fmt.Println("  pdf_split -pages 1-3,5 report.pdf excerpt.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_split [OPTIONS] <pdf_file> <output_dir>")
	fmt.Println("  pdf_split -pages <range> <pdf_file> <output_file>")
}
