package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/midbel/classics"
	"github.com/midbel/classics/internal/stdio"
)

func NewUniq(fs afero.Fs) *cobra.Command {
	t := newTool("uniq", fs)
	cmd := t.command("uniq [INPUT [OUTPUT]]", "filter adjacent matching lines", func(cmd *cobra.Command, args []string) error {
		var (
			in  = classics.ParseInputs(args[:min(len(args), 1)])
			out *stdio.Writer
		)
		if len(args) > 1 {
			w, err := stdio.Create(t.fs, args[1])
			if err != nil {
				return runError{err: err}
			}
			out = w
		}
		return t.run(cmd, t.deduplicator(), in, out)
	})
	cmd.Args = cobra.MaximumNArgs(2)
	flags := cmd.Flags()
	flags.BoolP("count", "c", false, "prefix lines by the number of occurrences")
	flags.BoolP("repeated", "d", false, "only print duplicate lines, one for each group")
	flags.BoolP("unique", "u", false, "only print unique lines")
	flags.BoolP("ignore-case", "i", false, "ignore differences in case when comparing")
	t.bind(t.key("count"), flags.Lookup("count"))
	t.bind(t.key("repeated"), flags.Lookup("repeated"))
	t.bind(t.key("unique"), flags.Lookup("unique"))
	t.bind(t.key("ignore_case"), flags.Lookup("ignore-case"))
	return cmd
}

func (t *tool) deduplicator() classics.Deduplicator {
	return classics.Deduplicator{
		Counts:     t.viper.GetBool(t.key("count")),
		Repeated:   t.viper.GetBool(t.key("repeated")),
		Unique:     t.viper.GetBool(t.key("unique")),
		IgnoreCase: t.viper.GetBool(t.key("ignore_case")),
	}
}
