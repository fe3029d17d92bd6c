package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valvelet/internal/model"
	"valvelet/internal/source"
	"valvelet/internal/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunFullPipeline(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dataDir := filepath.Join(t.TempDir(), "dat")
	require.NoError(t, source.WriteSampleData(dataDir))

	lr, err := Run(dataDir, 3650, quietLogger())
	require.NoError(t, err)

	assert.NotEmpty(t, lr.Result.Projections)
	assert.Len(t, lr.Result.Projections[0].Points, 3650)
	assert.Equal(t, len(lr.Inputs.Scenarios), len(lr.Result.Ranked))

	// The balance reading was journaled.
	j, err := store.Open(store.DefaultPath())
	require.NoError(t, err)
	defer j.Close()
	entries, err := j.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// A second run is a full recompute and does not duplicate the journal row.
	lr2, err := Run(dataDir, 3650, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, len(lr.Result.Projections), len(lr2.Result.Projections))
	entries, err = j.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunSurfacesMalformedData(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dataDir := filepath.Join(t.TempDir(), "dat")
	require.NoError(t, source.WriteSampleData(dataDir))

	bad := `<balance><current as-of="2026-02-19">not-a-number</current></balance>`
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "balance.xml"), []byte(bad), 0o600))

	_, err := Run(dataDir, 3650, quietLogger())
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}
