package cli

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/midbel/classics/internal/stdio"
)

func NewEcho(fs afero.Fs) *cobra.Command {
	t := newTool("echo", fs)
	cmd := t.command("echo TEXT...", "write arguments to standard output", func(cmd *cobra.Command, args []string) error {
		defer t.logger.Sync()
		var (
			out     = stdio.Buffer(cmd.OutOrStdout())
			sep     = t.viper.GetString(t.key("separator"))
			newline = !t.viper.GetBool(t.key("omit_newline"))
		)
		err := echo(out, args, sep, newline)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return runError{err: err}
		}
		return nil
	})
	cmd.Args = cobra.MinimumNArgs(1)
	flags := cmd.Flags()
	flags.BoolP("omit-newline", "n", false, "do not print newline")
	flags.StringP("separator", "s", " ", "separator written between arguments")
	t.bind(t.key("omit_newline"), flags.Lookup("omit-newline"))
	t.bind(t.key("separator"), flags.Lookup("separator"))
	return cmd
}

func echo(w io.Writer, args []string, sep string, newline bool) error {
	for i, a := range args {
		if i > 0 {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, a); err != nil {
			return err
		}
	}
	if !newline {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
