package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwr/quizgen/internal/quizgen"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "List sectors, branches and careers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, sector := range quizgen.Sectors() {
			fmt.Println(sector)
			for _, branch := range quizgen.Branches(sector) {
				fmt.Printf("  %s\n", branch.Name)
				for _, career := range branch.Careers {
					fmt.Printf("    %s\n", career)
				}
			}
		}
	},
}
