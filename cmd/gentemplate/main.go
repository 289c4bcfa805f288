package main

import (
	"flag"
	"fmt"
	"os"

	"stock-organizer/internal/exporter/word"
)

func main() {
	out := flag.String("o", "template.docx", "Destination of the Word report template")
	flag.Parse()

	data, err := word.Template()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build template: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Template written to %s\n", *out)
}
