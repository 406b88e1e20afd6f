package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahilSawant11/mizu/internal/common"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetOptionalText_EOFMeansSkip(t *testing.T) {
	var out bytes.Buffer
	got, err := GetOptionalText(rdr(""), "Notes?", &out)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGetAmount(t *testing.T) {
	var out bytes.Buffer

	v, err := GetAmount(rdr("12.50\n"), "Amount", &out)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 12.5, *v)

	v, err = GetAmount(rdr("\n"), "Amount", &out)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = GetAmount(rdr("abc\n"), "Amount", &out)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = GetAmount(rdr("-5\n"), "Amount", &out)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestGetChoice(t *testing.T) {
	options := []string{"Food & Drinks", "Travel", "Shopping"}
	var out bytes.Buffer

	got, err := GetChoice(rdr("2\n"), "Category", options, &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Travel", *got)

	got, err = GetChoice(rdr("shopping\n"), "Category", options, &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Shopping", *got)

	got, err = GetChoice(rdr("\n"), "Category", options, &out)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = GetChoice(rdr("9\n"), "Category", options, &out)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = GetChoice(rdr("Rent\n"), "Category", options, &out)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestGetSecret_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetSecret("Enter pin", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("abc")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = parseID("0")
	assert.ErrorIs(t, err, common.ErrValidation)
}
