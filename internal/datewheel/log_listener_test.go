package datewheel

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogListener(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p, _, err := NewWithWheels(DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, p.AddListener(NewLogListener(log.New(&buf, "", 0))))

	require.NoError(t, p.SetYear(1989))
	assert.Equal(t, "Selected date changed ! 15.08.2000 -> 15.08.1989\n", buf.String())
}
