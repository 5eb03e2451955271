package shl_test

import (
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/require"
)

// requireEqualText fails with a unified diff, which reads better than a
// value dump for multi-line HTML.
func requireEqualText(t *testing.T, want, got string) {
	t.Helper()

	if want == got {
		return
	}

	edits := myers.ComputeEdits(span.URIFromPath("want"), want, got)
	diff := fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits))
	require.Fail(t, "output mismatch", diff)
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
