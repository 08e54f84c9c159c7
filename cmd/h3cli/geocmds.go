package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wewei/h3"
)

var geoToH3Res int

var geoToH3Cmd = &cobra.Command{
	Use:   "geo-to-h3 <lat> <lon>",
	Short: "Convert a latitude/longitude pair (degrees) to a cell index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, lon, err := parseLatLon(args[0], args[1])
		if err != nil {
			return err
		}
		cell := h3.GeoToH3(h3.GeoCoord{Lat: h3.DegsToRads(lat), Lon: h3.DegsToRads(lon)}, geoToH3Res)
		logger.Debug("geo-to-h3", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Int("res", geoToH3Res))
		fmt.Println(h3.H3ToString(cell))
		return nil
	},
}

var h3ToGeoCmd = &cobra.Command{
	Use:   "h3-to-geo <index>",
	Short: "Convert a cell index to its center latitude/longitude (degrees)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cell, err := h3.ParseCellIndex(args[0])
		if err != nil {
			return err
		}
		g := h3.H3ToGeo(cell)
		fmt.Printf("%.6f %.6f\n", h3.RadsToDegs(g.Lat), h3.RadsToDegs(g.Lon))
		return nil
	},
}

func init() {
	geoToH3Cmd.Flags().IntVarP(&geoToH3Res, "resolution", "r", 9, "target resolution (0-15)")
}
