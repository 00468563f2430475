package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terrasense/pitcheck/internal/model"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the sensor categories the standard covers",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-26s %-34s %-8s %s\n", "KEY", "NAME", "UNIT", "MIN")
		for _, c := range model.Categories() {
			info, _ := model.Info(c)
			fmt.Printf("%-26s %-34s %-8s %d\n", c, info.DisplayName, info.Unit, info.MinCount)
		}
	},
}
