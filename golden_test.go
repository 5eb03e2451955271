package shl_test

import (
	"os"
	"testing"

	"github.com/gopatchy/shl"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestGoldenInstallScript(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("testdata/install.sh")
	require.NoError(t, err)

	h, err := shl.New(&shl.Options{LineNumbers: boolPtr(true)})
	require.NoError(t, err)

	out, err := h.Parse(string(src))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "install", []byte(out))
}
