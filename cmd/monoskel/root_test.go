package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monoskel/monoskel/mesh"
	"github.com/monoskel/monoskel/skel"
)

func TestExitCodeForMapsSentinels(t *testing.T) {
	assert.Equal(t, 0, exitCodeFor(nil))
	assert.Equal(t, 2, exitCodeFor(skel.ErrNotMonotone))
	assert.Equal(t, 3, exitCodeFor(skel.ErrNumericInconsistency))
	assert.Equal(t, 4, exitCodeFor(mesh.ErrMalformedLine))
	assert.Equal(t, 1, exitCodeFor(assert.AnError))
}

func TestDuplicatePathInsertsSuffixBeforeExtension(t *testing.T) {
	assert.Equal(t, "out.duplicate.mesh", duplicatePath("out.mesh"))
	assert.Equal(t, "nodir.duplicate.mesh", duplicatePath("nodir.mesh"))
}
