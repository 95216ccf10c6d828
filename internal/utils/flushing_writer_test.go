package utils_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/auralearn/internal/utils"
)

func TestFlushingWriterFlushesBufferedTarget(t *testing.T) {
	destination := &bytes.Buffer{}
	buffered := bufio.NewWriterSize(destination, 4096)

	writer := utils.NewFlushingWriter(buffered)
	written, writeError := writer.Write([]byte("aura: hello\n"))
	require.NoError(t, writeError)
	require.Equal(t, 12, written)
	require.Equal(t, "aura: hello\n", destination.String())
}

func TestFlushingWriterDoesNotDoubleWrap(t *testing.T) {
	writer := utils.NewFlushingWriter(&bytes.Buffer{})
	require.Same(t, writer, utils.NewFlushingWriter(writer))
	require.Nil(t, utils.NewFlushingWriter(nil))
}
