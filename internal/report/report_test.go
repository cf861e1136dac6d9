package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoDSN(t *testing.T) {
	r, err := New("", "test", "0")
	require.NoError(t, err)
	assert.IsType(t, Noop{}, r)
	r.Report(errors.New("ignored"), map[string]string{"file": "clip.mkv"})
}

func TestNew_BadDSN(t *testing.T) {
	_, err := New("not a dsn", "test", "0")
	assert.Error(t, err)
}
