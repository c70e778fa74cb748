package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) generateFromFileCommand() *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "generate-from-file <file>...",
		Short: "Generate PDF invoices from JSON or YAML data files",
		Long: `Generate one PDF invoice per data file. The format is taken from the file
extension: .yaml and .yml are read as YAML, everything else as JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const action = "generating invoice from file"
			deps, err := c.deps()
			if err != nil {
				return failed(action, err)
			}

			results := deps.InvoiceService.GenerateFromFiles(cmd.Context(), args, concurrency)
			var firstErr error
			for _, res := range results {
				if res.Err != nil {
					if len(results) > 1 {
						c.printError(failed(action+" "+res.Source, res.Err))
					}
					if firstErr == nil {
						firstErr = res.Err
					}
					continue
				}
				c.printResult(res.Result)
			}

			if firstErr == nil {
				return nil
			}
			if len(results) == 1 {
				return failed(action, firstErr)
			}
			// the per file errors were printed already
			return silent(firstErr)
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 2, "number of invoices rendered at the same time")
	return cmd
}
