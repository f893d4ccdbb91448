package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/itz-Amethyst/excel-term/pkg/inventory"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/browse"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/chart"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/parser"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the workbook if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			created, err := inventory.Create(a.conf.File, a.options())
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created new Excel file: %s\n", a.conf.File)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Excel file '%s' already exists.\n", a.conf.File)
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var p inventory.Product
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product sheet with its first record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				rec, err := b.Add(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Product sheet '%s' added successfully.\n", rec.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&p.Name, "name", "n", "", "Product name, also the sheet title")
	cmd.Flags().StringVarP(&p.Description, "description", "d", "", "Product description")
	cmd.Flags().IntVarP(&p.Stock, "stock", "s", 0, "Items in stock")
	cmd.Flags().IntVarP(&p.Price, "price", "p", 0, "Unit price")
	for _, name := range []string{"name", "description", "stock", "price"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newEditCmd() *cobra.Command {
	var (
		name, description string
		stock, price      int
	)
	cmd := &cobra.Command{
		Use:               "edit <sheet>",
		Short:             "Append a record to a product sheet, renaming it when the name changes",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSheets,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch inventory.Patch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("stock") {
				patch.Stock = &stock
			}
			if flags.Changed("price") {
				patch.Price = &price
			}
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				rec, err := b.Edit(args[0], patch)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Product sheet '%s' updated successfully.\n", rec.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "New product name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().IntVarP(&stock, "stock", "s", 0, "New stock count")
	cmd.Flags().IntVarP(&price, "price", "p", 0, "New unit price")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <sheet>",
		Short:             "Delete a product sheet",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSheets,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				if err := b.DeleteSheet(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Product sheet '%s' deleted successfully.\n", args[0])
				return nil
			})
		},
	}
}

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "undo <sheet>",
		Short:             "Remove the most recent record of a product sheet",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSheets,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				removed, title, err := b.DeleteLastRow(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed record of %s from sheet '%s'.\n", removed.Date.Format(models.TimeLayout), title)
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List product sheets with their current stock and price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				data, err := b.Snapshot()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), data)
				}
				return browse.WriteSummary(cmd.OutOrStdout(), data.Sheets)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the whole workbook as JSON")
	return cmd
}

func newShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:               "show <sheet>",
		Short:             "Show every record of a product sheet",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSheets,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				s, err := b.Sheet(args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), s)
				}
				return browse.WriteSheet(cmd.OutOrStdout(), s)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the sheet as JSON")
	return cmd
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through product sheets interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				return browse.NewSession(b, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
			})
		},
	}
}

func newChartCmd() *cobra.Command {
	var (
		start, end string
		all        bool
		exportPath string
	)
	cmd := &cobra.Command{
		Use:   "chart [sheet]",
		Short: "Chart price over time, or price changes across all sheets",
		Long: `Without --all, plots the price of one product sheet over time.
With --all, plots the change in price between consecutive records for every sheet.
--start and --end (YYYY-MM-DD, inclusive) restrict the records used.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSheets,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := chart.ParseDateRange(start, end)
			if err != nil {
				return err
			}
			if all && len(args) > 0 {
				return fmt.Errorf("--all does not take a sheet argument")
			}
			if !all && len(args) == 0 {
				return fmt.Errorf("a sheet argument or --all is required")
			}

			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				out := cmd.OutOrStdout()
				if all {
					data, err := b.Snapshot()
					if err != nil {
						return err
					}
					series := chart.AllDeltas(data.Sheets, rng)
					if exportPath != "" {
						if err := chart.ExportDeltas(exportPath, series); err != nil {
							return err
						}
						return reportExport(out, exportPath)
					}
					fmt.Fprintf(out, "%s (%s)\n", chart.DeltaTitle, rng)
					return chart.WriteDeltas(out, series)
				}

				s, err := b.Sheet(args[0])
				if err != nil {
					return err
				}
				series := chart.Prices(s.Title, s.Records, rng)
				if exportPath != "" {
					if err := chart.ExportPrices(exportPath, series); err != nil {
						return err
					}
					return reportExport(out, exportPath)
				}
				fmt.Fprintf(out, "%s: %s (%s)\n", chart.PriceTitle, s.Title, rng)
				return chart.WritePrices(out, series)
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&all, "all", false, "Chart price changes of all sheets")
	cmd.Flags().StringVarP(&exportPath, "export", "o", "", "Write the chart to a new workbook at this path")
	return cmd
}

func newInfoCmd() *cobra.Command {
	var info models.Info
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show or set the business details of the Information sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, func(_ *app, b *inventory.Book) error {
				flags := cmd.Flags()
				if flags.Changed("address") || flags.Changed("year") || flags.Changed("city") || flags.Changed("country") {
					current, err := b.Info()
					if err != nil {
						return err
					}
					merged := mergeInfo(current, info, flags.Changed)
					if err := b.SetInfo(merged); err != nil {
						return err
					}
				}
				current, err := b.Info()
				if err != nil {
					return err
				}
				if current == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No information set.")
					return nil
				}
				return writeJSON(cmd.OutOrStdout(), current)
			})
		},
	}
	cmd.Flags().StringVar(&info.Address, "address", "", "Address")
	cmd.Flags().IntVar(&info.EstablishedYear, "year", 0, "Established year")
	cmd.Flags().StringVar(&info.City, "city", "", "City")
	cmd.Flags().StringVar(&info.Country, "country", "", "Country")
	return cmd
}

// mergeInfo overlays the flags that were set onto the stored info.
func mergeInfo(current *models.Info, set models.Info, changed func(string) bool) models.Info {
	var merged models.Info
	if current != nil {
		merged = *current
	}
	if changed("address") {
		merged.Address = set.Address
	}
	if changed("year") {
		merged.EstablishedYear = set.EstablishedYear
	}
	if changed("city") {
		merged.City = set.City
	}
	if changed("country") {
		merged.Country = set.Country
	}
	return merged
}

func reportExport(w io.Writer, path string) error {
	charts, err := parser.ExtractCharts(path)
	if err != nil {
		return fmt.Errorf("read back %s: %w", path, err)
	}
	for _, c := range charts {
		fmt.Fprintf(w, "Wrote %s chart %q with %d series to %s\n", c.ChartType, c.Title, len(c.Series), path)
	}
	return nil
}

func completeSheets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	a, err := setup(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer a.close()
	if _, err := os.Stat(a.conf.File); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	b, err := inventory.Open(a.conf.File, a.options())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer b.Close()
	return b.ProductSheets(), cobra.ShellCompDirectiveNoFileComp
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
