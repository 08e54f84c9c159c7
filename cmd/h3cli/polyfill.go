package main

import (
	"fmt"
	"os"

	gogeojson "github.com/paulmach/go.geojson"
	"github.com/spf13/cobra"

	"github.com/wewei/h3"
	"github.com/wewei/h3/geojson"
)

var polyfillRes int

var polyfillCmd = &cobra.Command{
	Use:   "polyfill <geojson-file>",
	Short: "Fill a GeoJSON Polygon feature with cells at a resolution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		feature, err := gogeojson.UnmarshalFeature(raw)
		if err != nil {
			return err
		}
		polygon, err := geojson.PolygonFromFeature(feature)
		if err != nil {
			return err
		}
		for _, c := range h3.Polyfill(polygon, polyfillRes) {
			fmt.Println(h3.H3ToString(c))
		}
		return nil
	},
}

func init() {
	polyfillCmd.Flags().IntVarP(&polyfillRes, "resolution", "r", 9, "fill resolution")
}
