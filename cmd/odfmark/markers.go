package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odfmark/go-odfmark/pkg/odfmark"
)

var markersCmd = &cobra.Command{
	Use:   "markers <input.odt>",
	Short: "List bookmark marker names in a document",
	Long: `List the bookmark marker names found in an OpenDocument text file,
in document order. Use these names with 'populate --set'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := odfmark.ReadMarkers(args[0])
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println(subtitleStyle.Render("no bookmarks found"))
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
