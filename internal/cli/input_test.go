package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	n, ok, err := GetInt(rdr("42\n"), "n", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	_, ok, err = GetInt(rdr("\n"), "n", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = GetInt(rdr("four\n"), "n", &out)
	assert.True(t, errors.Is(err, errNotANumber))
}

func TestGetID_RepromptsUntilPositive(t *testing.T) {
	var out bytes.Buffer
	n, ok, err := GetID(rdr("abc\n-3\n0\n7\n"), "id", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, 3, strings.Count(out.String(), "positive whole number"))
}

func TestGetID_EmptyGoesBack(t *testing.T) {
	var out bytes.Buffer
	_, ok, err := GetID(rdr("\n"), "id", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"No\n", false},
		{"maybe\nyes\n", true},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetYesNo(rdr(tt.in), "Sure?", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Sure? (yes/no)")
		})
	}

	_, err := GetYesNo(rdr("maybe\n"), "Sure?", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetMoney(t *testing.T) {
	var out bytes.Buffer

	m, err := GetMoney(rdr("\n"), "discount", &out, 150)
	require.NoError(t, err)
	assert.Equal(t, models.Money(150), m)

	m, err = GetMoney(rdr("1,000\n184467440737095517\n1000.5\n"), "discount", &out, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Money(100050), m)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter an amount"))
}

func TestIsInteractive(t *testing.T) {
	old := isTerminal
	t.Cleanup(func() { isTerminal = old })

	isTerminal = func(int) bool { return true }
	assert.True(t, isInteractive(os.Stdin))
	assert.False(t, isInteractive(strings.NewReader("")))

	isTerminal = func(int) bool { return false }
	assert.False(t, isInteractive(os.Stdin))
}
