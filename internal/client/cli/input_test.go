package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("  hello world  \n"), "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("partial"), "p", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", got)
}

func TestGetChoice(t *testing.T) {
	options := []string{"Staff", "Admin"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"by number", "2\n", "Admin", false},
		{"by text case-insensitive", "staff\n", "Staff", false},
		{"empty means none", "\n", "", false},
		{"number out of range", "9\n", "", true},
		{"unknown text", "root\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetChoice(reader(tt.input), "Select role", options, &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(reader("3\n"), "Page", 1, &out)
	require.NoError(t, err)
	require.Equal(t, 3, got)

	got, err = GetInt(reader("\n"), "Page", 1, &out)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	_, err = GetInt(reader("zero\n"), "Page", 1, &out)
	require.Error(t, err)

	_, err = GetInt(reader("-2\n"), "Page", 1, &out)
	require.Error(t, err)
}
