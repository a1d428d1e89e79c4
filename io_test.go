package convexhull

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	in := "2 1\n0 0\n\n2 1\n0.5 -3\n"
	points, err := ReadPoints(strings.NewReader(in))
	require.NoError(t, err)
	// Duplicates collapse, and the result comes back already sorted
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 0.5, Y: -3}, {X: 2, Y: 1}}, points)
}

func TestReadPointsEmpty(t *testing.T) {
	// Zero points read cleanly; rejecting them is FindHull's job
	points, err := ReadPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, points)

	points, err = ReadPoints(strings.NewReader("\n  \n"))
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestReadPointsMalformed(t *testing.T) {
	for _, in := range []string{
		"1 2\nbogus 3\n",
		"1 nope\n",
		"1\n",
		"1 2 3\n",
	} {
		_, err := ReadPoints(strings.NewReader(in))
		assert.Error(t, err, "input %q should not parse", in)
	}
}

func TestReadPointsMalformedNamesLine(t *testing.T) {
	_, err := ReadPoints(strings.NewReader("0 0\n1 1\noops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadPointsFileMissing(t *testing.T) {
	_, err := ReadPointsFile("testdata/does-not-exist")
	assert.Error(t, err)
}

func TestWritePoints(t *testing.T) {
	var buf bytes.Buffer
	err := WritePoints(&buf, []Point{{X: 0, Y: 0}, {X: 1.5, Y: -2}})
	require.NoError(t, err)
	assert.Equal(t, "(0,0)\n(1.5,-2)\n", buf.String())
}
