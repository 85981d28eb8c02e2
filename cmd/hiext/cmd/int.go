package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	hixerror "github.com/msto63/hiext/core/error"
	hixlog "github.com/msto63/hiext/core/log"
	"github.com/msto63/hiext/utils/intx"
)

func newIntCommand(a *app) *cobra.Command {
	intCmd := &cobra.Command{
		Use:   "int",
		Short: "Iterate over integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	intCmd.AddCommand(&cobra.Command{
		Use:   "times <n>",
		Short: "Run n iterations and print their count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("hiext.int.times", args[0])
			if err != nil {
				return err
			}
			count := 0
			intx.Times(n, func() {
				count++
				a.println(cmd, count)
			})
			a.log.Debug("iteration finished", hixlog.Fields{"command": "times", "n": n, "iterations": count})
			return nil
		},
	})

	intCmd.AddCommand(a.rangeCommand("upto <start> <end>", "Print every value from start up to end", intx.UpTo[int64]))
	intCmd.AddCommand(a.rangeCommand("downto <start> <end>", "Print every value from start down to end", intx.DownTo[int64]))
	return intCmd
}

// rangeCommand builds a command printing the values visited by iterate
func (a *app) rangeCommand(use, short string, iterate func(start, end int64, fn func(int64))) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := "hiext.int." + cmd.Name()
			start, err := parseInt(op, args[0])
			if err != nil {
				return err
			}
			end, err := parseInt(op, args[1])
			if err != nil {
				return err
			}

			visited := 0
			iterate(start, end, func(i int64) {
				visited++
				a.println(cmd, i)
			})
			a.log.Debug("iteration finished", hixlog.Fields{"command": cmd.Name(), "start": start, "end": end, "iterations": visited})
			return nil
		},
	}
}

func parseInt(operation, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, hixerror.InputError(operation, s, "64-bit integer")
	}
	return n, nil
}
