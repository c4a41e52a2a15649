// Command seed-dataset writes the built-in sample records to an .xlsx file
// usable as a dataset for the server or as an upload in manual testing.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"realestate-analyzer/internal/dataset"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var (
	outputPath string
	sheetName  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed-dataset",
		Short: "Generate the sample real-estate dataset as an .xlsx file",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "data/sample_realestate.xlsx", "Output file path")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "Sheet name to write")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	store := dataset.NewFromSeed()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := []interface{}{"Area", "Year", "Flat - Weighted Average Rate", "Total Sold - IGR"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range store.Records() {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{rec.Area, rec.Year, rec.Price, rec.Demand}
		if err := f.SetSheetRow(sheetName, addr, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}

	fmt.Printf("Wrote %d records to %s\n", store.Len(), outputPath)
	return nil
}
