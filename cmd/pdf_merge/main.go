package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/pageops"
)

var (
	outputPath = flag.String("o", "merged.pdf", "Output file for the merged PDF")
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

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Error: at least two input PDFs required\n\n")
		printUsage()
		os.Exit(1)
	}

	inputs := flag.Args()
	if err := pageops.Merge(inputs, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error merging: %v\n", err)
		os.Exit(1)
	}

	pages, err := pageops.PageCount(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting pages of merged file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Merged %d file(s) into %s (%d pages)\n", len(inputs), *outputPath, pages)
}

func printHelp() {
	fmt.Println("pdf_merge - Concatenate PDFs into a single document")
	fmt.Println()
	fmt.Println("Pages appear in input order.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -o         Output file (default merged.pdf)")
	fmt.Println("  -help      Show this help message")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_merge [OPTIONS] <pdf_file> <pdf_file> [<pdf_file> ...]")
}
