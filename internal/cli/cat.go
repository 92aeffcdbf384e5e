package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/midbel/classics"
)

func NewCat(fs afero.Fs) *cobra.Command {
	t := newTool("cat", fs)
	cmd := t.command("cat [FILE...]", "concatenate files to standard output", func(cmd *cobra.Command, args []string) error {
		return t.run(cmd, t.numberer(), classics.ParseInputs(args), nil)
	})
	flags := cmd.Flags()
	flags.BoolP("number", "n", false, "number all output lines")
	flags.BoolP("number-nonblank", "b", false, "number nonempty output lines, overrides -n")
	flags.BoolP("squeeze-blank", "s", false, "suppress repeated empty output lines")
	t.bind(t.key("number"), flags.Lookup("number"))
	t.bind(t.key("number_nonblank"), flags.Lookup("number-nonblank"))
	t.bind(t.key("squeeze_blank"), flags.Lookup("squeeze-blank"))
	return cmd
}

func (t *tool) numberer() classics.Numberer {
	var n classics.Numberer
	switch {
	case t.viper.GetBool(t.key("number_nonblank")):
		n.Mode = classics.NumberNonBlank
	case t.viper.GetBool(t.key("number")):
		n.Mode = classics.NumberAll
	}
	n.Squeeze = t.viper.GetBool(t.key("squeeze_blank"))
	return n
}
