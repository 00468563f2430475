package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/terrasense/pitcheck/internal/model"
	"github.com/terrasense/pitcheck/internal/standard"
)

var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Show what the standard requires for a pit class",
	Long: `Show the monitoring categories the standard requires, recommends, and
lists as optional. Without flags, prints the whole matrix; narrow it
down with --composition and --level.`,
	RunE: runRequirements,
}

func init() {
	requirementsCmd.Flags().StringP("composition", "c", "", "filter by pit composition: soil, rock, soil-rock")
	requirementsCmd.Flags().IntP("level", "l", 0, "filter by safety level: 1, 2, 3")
	requirementsCmd.Flags().Bool("constraints", false, "include layout constraints for required categories")
}

func runRequirements(cmd *cobra.Command, args []string) error {
	comp, _ := cmd.Flags().GetString("composition")
	level, _ := cmd.Flags().GetInt("level")
	withConstraints, _ := cmd.Flags().GetBool("constraints")

	matched := 0
	for _, c := range standard.Compositions() {
		if comp != "" && c != model.Composition(comp) {
			continue
		}
		for _, l := range standard.Levels() {
			if level != 0 && l != model.SafetyLevel(level) {
				continue
			}
			reqs, ok := standard.Resolve(c, l)
			if !ok {
				continue
			}
			if matched > 0 {
				fmt.Println()
			}
			matched++
			printRequirements(c, l, reqs, withConstraints)
		}
	}

	if matched == 0 {
		return fmt.Errorf("no monitoring requirements match composition %q at safety level %d", comp, level)
	}
	return nil
}

func printRequirements(c model.Composition, l model.SafetyLevel, reqs standard.Requirements, withConstraints bool) {
	fmt.Printf("%s, safety level %d\n", c, l)
	fmt.Println(tierLine("required:", reqs.Required))
	fmt.Println(tierLine("recommended:", reqs.Recommended))
	fmt.Println(tierLine("optional:", reqs.Optional))

	if !withConstraints {
		return
	}
	for _, cat := range reqs.Required {
		con, _ := standard.ConstraintFor(cat)
		fmt.Printf("    %-26s %s\n", cat, describeConstraint(con))
	}
}

func tierLine(label string, cats []model.Category) string {
	if len(cats) == 0 {
		return fmt.Sprintf("  %-13s none", label)
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = model.DisplayName(c)
	}
	return fmt.Sprintf("  %-13s %s", label, strings.Join(names, ", "))
}

func describeConstraint(c standard.Constraint) string {
	var parts []string
	if c.MinPerSide > 0 {
		parts = append(parts, fmt.Sprintf(">=%d per side", c.MinPerSide))
	}
	if len(c.Zones) > 0 {
		zones := make([]string, len(c.Zones))
		for i, z := range c.Zones {
			zones[i] = string(z)
		}
		parts = append(parts, "zones: "+strings.Join(zones, "+"))
	}
	if c.MaxSpacing > 0 {
		parts = append(parts, fmt.Sprintf("spacing <= %g m", c.MaxSpacing))
	}
	if c.RangeFactor > 0 {
		parts = append(parts, fmt.Sprintf("reach >= %gx depth", c.RangeFactor))
	}
	if c.MinPoints > 0 {
		parts = append(parts, fmt.Sprintf(">=%d points", c.MinPoints))
	}
	if len(parts) == 0 {
		return "no layout constraint"
	}
	return strings.Join(parts, ", ")
}
