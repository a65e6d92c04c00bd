// Command analyze runs the document analyzer against a local file and
// prints the findings. Useful for spot-checking extraction without the
// API server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"findoc_analyst/pkg/core/docanalyzer"
	"findoc_analyst/pkg/core/pdf"
)

func main() {
	asJSON := flag.Bool("json", false, "print the full analysis as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-json] <file.pdf|file.html|file.txt>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error: failed to read %s: %v", path, err)
	}

	extracted, err := pdf.ExtractAny(path, data)
	if err != nil {
		log.Fatalf("Error: failed to extract text: %v", err)
	}

	metrics := docanalyzer.ExtractMetrics(extracted.Text)
	ratios := docanalyzer.ComputeRatios(metrics)
	docType := docanalyzer.ClassifyDocument(extracted.Text)
	dates := docanalyzer.ExtractDates(extracted.Text)

	if *asJSON {
		out := map[string]interface{}{
			"filename":      path,
			"document_type": docType,
			"page_count":    extracted.PageCount,
			"metrics":       metrics,
			"ratios":        ratios,
			"dates":         dates,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return
	}

	fmt.Printf("=== %s ===\n", path)
	fmt.Printf("Document type: %s\n", docType)
	if extracted.PageCount > 0 {
		fmt.Printf("Pages: %d\n", extracted.PageCount)
	}

	fmt.Println("\nMetrics:")
	printSorted(metrics)

	fmt.Println("\nRatios:")
	printSorted(ratios)

	fmt.Println("\nDates:")
	if len(dates) == 0 {
		fmt.Println("  (none found)")
	}
	for _, d := range dates {
		fmt.Printf("  %s\n", d)
	}
}

func printSorted(values map[string]float64) {
	if len(values) == 0 {
		fmt.Println("  (none found)")
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-20s %.2f\n", k, values[k])
	}
}
