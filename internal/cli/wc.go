package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/midbel/classics"
)

func NewWc(fs afero.Fs) *cobra.Command {
	t := newTool("wc", fs)
	cmd := t.command("wc [FILE...]", "print newline, word and byte counts for each file", func(cmd *cobra.Command, args []string) error {
		counter, err := t.counter()
		if err != nil {
			return err
		}
		return t.run(cmd, counter, classics.ParseInputs(args), nil)
	})
	flags := cmd.Flags()
	flags.BoolP("lines", "l", false, "print the newline counts")
	flags.BoolP("words", "w", false, "print the word counts")
	flags.BoolP("bytes", "c", false, "print the byte counts")
	flags.BoolP("chars", "m", false, "print the character counts")
	cmd.MarkFlagsMutuallyExclusive("bytes", "chars")
	for _, opt := range []string{"lines", "words", "bytes", "chars"} {
		t.bind(t.key(opt), flags.Lookup(opt))
	}
	return cmd
}

func (t *tool) counter() (*classics.Counter, error) {
	c := classics.Counter{
		Lines: t.viper.GetBool(t.key("lines")),
		Words: t.viper.GetBool(t.key("words")),
		Bytes: t.viper.GetBool(t.key("bytes")),
		Chars: t.viper.GetBool(t.key("chars")),
	}
	if c.Bytes && c.Chars {
		return nil, classics.ErrConflict
	}
	if !c.Lines && !c.Words && !c.Bytes && !c.Chars {
		return classics.DefaultCounter(), nil
	}
	return &c, nil
}
