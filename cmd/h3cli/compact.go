package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wewei/h3"
)

var uncompactRes int

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Read cell indexes from stdin, one per line, and print their compacted set",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := readIndexes(os.Stdin)
		if err != nil {
			return err
		}
		compacted, code := h3.Compact(set)
		if code != h3.CompactOK {
			return fmt.Errorf("compact failed with code %d", code)
		}
		for _, c := range compacted {
			fmt.Println(h3.H3ToString(c))
		}
		return nil
	},
}

var uncompactCmd = &cobra.Command{
	Use:   "uncompact",
	Short: "Read cell indexes from stdin and expand to a uniform target resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := readIndexes(os.Stdin)
		if err != nil {
			return err
		}
		uncompacted, code := h3.Uncompact(set, uncompactRes)
		if code != h3.CompactOK {
			return fmt.Errorf("uncompact failed with code %d", code)
		}
		for _, c := range uncompacted {
			fmt.Println(h3.H3ToString(c))
		}
		return nil
	},
}

func init() {
	uncompactCmd.Flags().IntVarP(&uncompactRes, "resolution", "r", 9, "target resolution")
	compactCmd.AddCommand(uncompactCmd)
}

func readIndexes(f *os.File) ([]h3.CellIndex, error) {
	var out []h3.CellIndex
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		c, err := h3.ParseCellIndex(line)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, scanner.Err()
}
