package classics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/midbel/classics"
)

func filterString(t *testing.T, f classics.Filter, input string) string {
	t.Helper()
	src, err := classics.NewOpener(nil, strings.NewReader(input)).Open(classics.Stdin())
	if err != nil {
		t.Fatalf("fail to open standard input: %s", err)
	}
	src.Count = 1

	var out bytes.Buffer
	if err := f.Filter(&out, src); err != nil {
		t.Fatalf("unexpected error while filtering: %s", err)
	}
	return out.String()
}
