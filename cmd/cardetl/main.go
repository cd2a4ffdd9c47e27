// Command cardetl extracts Pokémon card fields from JSON exports and writes
// the aggregate as a CSV file plus a SQL insert script.
//
// Batch mode processes every .json file in a directory:
//
//	cardetl -dir ./sets -out all_pokemon_data.csv
//
// Single-file mode processes one export (output defaults to
// pokemon_data.csv):
//
//	cardetl -file base1.json
//
// The .sql artifact path is always derived from the CSV path by swapping
// the extension.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cardetl/internal/batch"
)

func main() {
	var (
		dirPath  string
		filePath string
		outCSV   string
	)

	flag.StringVar(&dirPath, "dir", "", "directory of card export .json files (batch mode)")
	flag.StringVar(&filePath, "file", "", "single card export .json file")
	flag.StringVar(&outCSV, "out", "", "output CSV path (the .sql path is derived from it)")
	flag.Parse()

	ctx := context.Background()

	switch {
	case dirPath != "" && filePath != "":
		fatalf("-dir and -file are mutually exclusive")

	case dirPath != "":
		if outCSV == "" {
			fatalf("-out is required with -dir")
		}
		if _, err := batch.Run(ctx, dirPath, outCSV); err != nil {
			fatalf("%v", err)
		}

	case filePath != "":
		if outCSV == "" {
			outCSV = "pokemon_data.csv"
		}
		if _, err := batch.RunFile(ctx, filePath, outCSV); err != nil {
			fatalf("%v", err)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
