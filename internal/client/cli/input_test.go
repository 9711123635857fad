package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  Amit Kumar  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter name", &out)
	require.NoError(t, err)
	require.Equal(t, "Amit Kumar", got)
	require.Contains(t, out.String(), "Enter name")
}

func TestGetSimpleTextEOFWithPartialInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("partial"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter name", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", got)
}

func TestGetSimpleTextEOFWithoutInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Enter name", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password")
}
