package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/example/dexnorm/internal/mangadex"
)

var associateCmd = &cobra.Command{
	Use:   "associate [detail-file]",
	Short: "Resolve a chapter detail document to its parent series id",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := mangadex.AssociatedSeriesID(openPayload(args))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(map[string]int64{"series_id": id})
	},
}

func init() {
	rootCmd.AddCommand(associateCmd)
}
