package cmd

import (
	"os"

	"github.com/Layr-Labs/eigenops/pkg/operations"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List every supported operation",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		exec := operations.NewExecutor(nil, nil, nil, nil)
		descriptors := exec.Descriptors()
		if kind != "" {
			descriptors = lo.Filter(descriptors, func(d *operations.Descriptor, _ int) bool {
				return string(d.Kind) == kind
			})
		}
		out := lo.Map(descriptors, func(d *operations.Descriptor, _ int) *records.Record {
			r := records.New().
				Set("name", d.Name()).
				Set("kind", string(d.Kind))
			if d.Contract != "" {
				r.Set("contract", string(d.Contract))
			}
			if d.Description != "" {
				r.Set("description", d.Description)
			}
			return r
		})
		return writeJSON(os.Stdout, out)
	},
}

func init() {
	operationsCmd.Flags().String("kind", "", "Only list operations of this kind (read, write, local)")
}
