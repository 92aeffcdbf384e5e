package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/midbel/classics"
)

func NewHead(fs afero.Fs) *cobra.Command {
	t := newTool("head", fs)
	cmd := t.command("head [FILE...]", "print the first lines of each file", func(cmd *cobra.Command, args []string) error {
		trunc, err := t.truncator(cmd)
		if err != nil {
			return err
		}
		return t.run(cmd, trunc, classics.ParseInputs(args), nil)
	})
	flags := cmd.Flags()
	flags.StringP("lines", "n", fmt.Sprint(classics.DefaultLines), "print the first `NUM` lines")
	flags.StringP("bytes", "c", "", "print the first `NUM` bytes")
	flags.BoolP("quiet", "q", false, "never print headers giving file names")
	flags.BoolP("verbose", "v", false, "always print headers giving file names")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
	t.bind(t.key("lines"), flags.Lookup("lines"))
	t.bind(t.key("bytes"), flags.Lookup("bytes"))
	t.bind(t.key("quiet"), flags.Lookup("quiet"))
	t.bind(t.key("verbose"), flags.Lookup("verbose"))
	return cmd
}

func (t *tool) truncator(cmd *cobra.Command) (classics.Truncator, error) {
	var (
		trunc classics.Truncator
		flags = cmd.Flags()
		bytes = t.viper.GetString(t.key("bytes")) != ""
	)
	if flags.Changed("lines") || flags.Changed("bytes") {
		bytes = flags.Changed("bytes")
	}
	if bytes {
		str := t.viper.GetString(t.key("bytes"))
		n, err := ParsePositive(str)
		if err != nil {
			return trunc, fmt.Errorf("illegal byte count -- %w", err)
		}
		trunc.Bytes = n
	} else {
		n, err := ParsePositive(t.viper.GetString(t.key("lines")))
		if err != nil {
			return trunc, fmt.Errorf("illegal line count -- %w", err)
		}
		trunc.Lines = n
	}
	switch {
	case t.viper.GetBool(t.key("quiet")):
		trunc.Header = classics.HeaderNever
	case t.viper.GetBool(t.key("verbose")):
		trunc.Header = classics.HeaderAlways
	}
	return trunc, nil
}
