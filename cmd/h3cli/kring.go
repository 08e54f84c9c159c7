package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wewei/h3"
)

var kringK int

var kringCmd = &cobra.Command{
	Use:   "kring <index>",
	Short: "List every cell within k grid steps of a cell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, err := h3.ParseCellIndex(args[0])
		if err != nil {
			return err
		}
		for _, c := range h3.KRing(origin, kringK) {
			fmt.Println(h3.H3ToString(c))
		}
		return nil
	},
}

func init() {
	kringCmd.Flags().IntVarP(&kringK, "k", "k", 1, "grid-distance radius")
}
