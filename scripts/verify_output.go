package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"stock-organizer/internal/blockparser"
	"stock-organizer/internal/sizes"
	"stock-organizer/internal/workbook"
)

func main() {
	// Check which file to verify
	filename := "output/archivo_organizado_con_tallas.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := os.Open(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	records, err := workbook.ReadRecords(f)
	if err != nil {
		log.Fatal(err)
	}

	extractor := sizes.MustNew(sizes.DefaultOptions())
	known := make(map[string]bool)
	for _, s := range sizes.LetterSizes {
		known[s] = true
	}

	fmt.Printf("=== ORGANIZED SHEET CHECK: %s ===\n", filename)
	fmt.Printf("Total records: %d\n\n", len(records))

	problems := 0
	for i, rec := range records {
		row := i + 2 // header is row 1

		code := strings.TrimSpace(rec.ProductCode)
		if !blockparser.IsDataKey(code) {
			fmt.Printf("❌ Row %d: product code %q is not a data key\n", row, rec.ProductCode)
			problems++
		}

		if _, size, ok := extractor.Extract(rec.ProductName); ok {
			fmt.Printf("❌ Row %d: name %q still carries size %s\n", row, rec.ProductName, size)
			problems++
		}

		if rec.Size != "" && !known[rec.Size] {
			fmt.Printf("⚠️  Row %d: size %q is not a letter size\n", row, rec.Size)
		}

		if !rec.Quantity.IsNumber() && !rec.Quantity.IsEmpty() {
			fmt.Printf("⚠️  Row %d: quantity %q is not a number\n", row, rec.Quantity.Text)
		}
	}

	fmt.Println()
	if problems == 0 {
		fmt.Println("✅ Organized sheet is clean")
		return
	}
	fmt.Printf("❌ %d problem(s) found\n", problems)
	os.Exit(1)
}
