package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esexpr/esexpr/internal/logger"
	"github.com/esexpr/esexpr/internal/test"
)

func TestMsgIDs(t *testing.T) {
	for id := logger.MsgID_None; id <= logger.MsgID_END; id++ {
		str := logger.MsgIDToString(id)
		if str == "" {
			continue
		}

		found, ok := logger.StringToMsgID(str)
		if !ok {
			t.Fatalf("Failed to find message id for the string %q", str)
		}
		test.AssertEqual(t, found, id)
	}

	_, ok := logger.StringToMsgID("not-a-real-id")
	test.AssertEqual(t, ok, false)
}

func TestLocationOrNil(t *testing.T) {
	source := test.SourceForTest("a\nbb\r\nccc + d")
	loc := logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 10}, Len: 1})
	require.NotNil(t, loc)
	test.AssertEqual(t, loc.File, "<stdin>")
	test.AssertEqual(t, loc.Line, 3)
	test.AssertEqual(t, loc.Column, 4)
	test.AssertEqual(t, loc.Length, 1)
	test.AssertEqual(t, loc.LineText, "ccc + d")

	require.Nil(t, logger.LocationOrNil(nil, logger.Range{}))
}

func TestLineSeparators(t *testing.T) {
	source := test.SourceForTest("a\u2028b\u2029c")
	loc := logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 8}})
	test.AssertEqual(t, loc.Line, 3)
	test.AssertEqual(t, loc.Column, 0)
	test.AssertEqual(t, loc.LineText, "c")
}

func TestMsgString(t *testing.T) {
	source := test.SourceForTest("a +* b")
	msg := logger.Msg{
		Kind:     logger.Error,
		Text:     "Unexpected \"*\"",
		Location: logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 3}, Len: 1}),
	}

	test.AssertEqualWithDiff(t,
		msg.String(logger.OutputOptions{}, logger.TerminalInfo{}),
		"<stdin>:1:3: error: Unexpected \"*\"\n")

	test.AssertEqualWithDiff(t,
		msg.String(logger.OutputOptions{IncludeSource: true}, logger.TerminalInfo{}),
		"<stdin>:1:3: error: Unexpected \"*\"\na +* b\n   ^\n")

	warning := logger.Msg{ID: logger.MsgID_JS_EqualsNaN, Kind: logger.Warning, Text: "Comparison with NaN"}
	test.AssertEqualWithDiff(t,
		warning.String(logger.OutputOptions{}, logger.TerminalInfo{}),
		"warning: Comparison with NaN [equals-nan]\n")
}

func TestDeferLogSorts(t *testing.T) {
	source := test.SourceForTest("x\ny")
	log := logger.NewDeferLog()
	log.AddError(&source, logger.Range{Loc: logger.Loc{Start: 2}}, "second")
	log.AddWarning(&source, logger.MsgID_None, logger.Range{Loc: logger.Loc{Start: 0}}, "first")
	require.True(t, log.HasErrors())

	msgs := log.Done()
	require.Len(t, msgs, 2)
	test.AssertEqual(t, msgs[0].Text, "first")
	test.AssertEqual(t, msgs[1].Text, "second")
}

func TestMsgsToError(t *testing.T) {
	require.NoError(t, logger.MsgsToError(nil))
	require.NoError(t, logger.MsgsToError([]logger.Msg{{Kind: logger.Warning, Text: "w"}}))

	source := test.SourceForTest("a b")
	one := logger.MsgsToError([]logger.Msg{
		{Kind: logger.Error, Text: "bad", Location: logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 2}})},
	})
	require.EqualError(t, one, "<stdin>:1:2: bad")

	var msgErr *logger.MsgError
	require.True(t, errors.As(one, &msgErr))
	test.AssertEqual(t, msgErr.Msg.Text, "bad")

	two := logger.MsgsToError([]logger.Msg{{Kind: logger.Error, Text: "a"}, {Kind: logger.Error, Text: "b"}})
	require.EqualError(t, two, "2 errors occurred:\n\ta\n\tb")
}
