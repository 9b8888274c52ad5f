package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/example/dexnorm/internal/mangadex"
)

var coversCmd = &cobra.Command{
	Use:   "covers [covers-file]",
	Short: "Extract the cover URL list from a covers payload",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		urls, err := mangadex.DecodeCovers(openPayload(args))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(urls)
	},
}

func init() {
	rootCmd.AddCommand(coversCmd)
}
