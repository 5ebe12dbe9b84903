package bytestr

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ fmt.Stringer    = (*Buffer)(nil)
	_ fmt.Stringer    = View{}
)

func TestPushByte(t *testing.T) {
	b := AllocString("Hello, wor")
	require.NoError(t, b.WriteByte('l'))
	require.NoError(t, b.WriteByte('d'))
	require.NoError(t, b.WriteByte('!'))
	require.True(t, Equal(RefString("Hello, world!"), b.View()))
}

func TestPushString(t *testing.T) {
	b := AllocString("Hello")
	require.NoError(t, b.Push(RefString(", ")))
	require.NoError(t, b.Push(RefString("world")))
	require.NoError(t, b.Push(RefString("!")))
	require.Equal(t, "Hello, world!", b.String())

	require.NoError(t, b.Push(Ref(nil)))
	require.Equal(t, "Hello, world!", b.String())
}

func TestPushSelf(t *testing.T) {
	b := AllocString("ab", WithMinCapacity(2))
	require.NoError(t, b.Push(b.View()))
	require.Equal(t, "abab", b.String())
	require.NoError(t, b.Push(b.Slice(1, 2)))
	require.Equal(t, "ababba", b.String())
}

func TestWriterInterface(t *testing.T) {
	var b Buffer
	n, err := fmt.Fprintf(&b, "%d-%s", 42, "x")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	_, err = b.WriteString("!")
	require.NoError(t, err)
	require.Equal(t, "42-x!", b.String())
}

func TestPopByte(t *testing.T) {
	b := AllocString("abc")
	for _, want := range []byte("cba") {
		c, ok := b.PopByte()
		require.True(t, ok)
		require.Equal(t, want, c)
	}
	_, ok := b.PopByte()
	require.False(t, ok)
	require.Equal(t, 0, b.Len())
}

func TestPopN(t *testing.T) {
	b := AllocString("Hello, world!")

	out, ok := b.PopN(100)
	require.False(t, ok)
	require.Nil(t, out)
	require.Equal(t, "Hello, world!", b.String())

	_, ok = b.PopN(-1)
	require.False(t, ok)

	v := b.View()
	out, ok = b.PopN(0)
	require.True(t, ok)
	require.Equal(t, 0, out.Len())
	require.Equal(t, FlagValid|FlagHeap, out.Flags())
	require.NoError(t, v.Err(), "popping nothing leaves the buffer untouched")

	out, ok = b.PopN(6)
	require.True(t, ok)
	require.Equal(t, "world!", out.String())
	require.Equal(t, "Hello, ", b.String())
	require.ErrorIs(t, v.Err(), ErrStaleView)

	out, ok = b.PopN(b.Len())
	require.True(t, ok)
	require.Equal(t, "Hello, ", out.String())
	require.Equal(t, 0, b.Len())
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		pos     int
		infix   string
		want    string
	}{
		{"middle", "Hello world", 5, ",", "Hello, world"},
		{"start", "world", 0, "Hello ", "Hello world"},
		{"end", "Hello", 5, "!", "Hello!"},
		{"beyond", "Hello", 100, "!", "Hello!"},
		{"negative", "world", -4, "<", "<world"},
		{"empty infix", "abc", 1, "", "abc"},
		{"into empty", "", 0, "abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := AllocString(tt.initial)
			require.NoError(t, b.Insert(tt.pos, RefString(tt.infix)))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestInsertByteGrows(t *testing.T) {
	b := AllocString("abc", WithMinCapacity(4))
	require.Equal(t, 4, b.Cap())
	require.NoError(t, b.InsertByte(1, 'x'))
	require.Equal(t, 4, b.Cap())
	require.NoError(t, b.InsertByte(0, 'y'))
	require.Equal(t, 8, b.Cap())
	require.Equal(t, "yaxbc", b.String())
	require.NoError(t, b.InsertByte(99, 'z'))
	require.Equal(t, "yaxbcz", b.String())
}

func TestInsertSelf(t *testing.T) {
	b := AllocString("abc")
	require.NoError(t, b.Insert(1, b.View()))
	require.Equal(t, "aabcbc", b.String())
}

func TestReplaceRange(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		off, n  int
		repl    string
		want    string
	}{
		{"same length", "Hello, world!", 7, 5, "there", "Hello, there!"},
		{"shrink", "Hello, world!", 7, 5, "Go", "Hello, Go!"},
		{"grow", "Hello, Go!", 7, 2, "world", "Hello, world!"},
		{"delete", "Hello, world!", 5, 7, "", "Hello!"},
		{"zero length inserts", "Hello world", 5, 0, ",", "Hello, world"},
		{"offset past end appends", "Hello", 9, 3, "!", "Hello!"},
		{"length clamped", "Hello, world!", 7, 100, "there", "Hello, there"},
		{"whole", "abc", 0, 3, "xyz", "xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := AllocString(tt.initial)
			require.NoError(t, b.ReplaceRange(tt.off, tt.n, RefString(tt.repl)))
			assert.Equal(t, tt.want, b.String())
			assert.LessOrEqual(t, b.Len(), b.Cap())
		})
	}
}

func TestReplaceRangeSwapsBuffer(t *testing.T) {
	b := AllocString("Hello, world!")
	old := b.buf
	require.NoError(t, b.ReplaceRange(0, 5, RefString("Jello")))
	require.Equal(t, make([]byte, 13), old[:13], "old array is zeroed")
	require.Equal(t, "Jello, world!", b.String())
}

func TestReplaceSequence(t *testing.T) {
	b := AllocString("Hello, foo foo bar!")

	n, err := b.Replace(RefString("foo"), RefString("bar"), 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "Hello, bar foo bar!", b.String())

	n, err = b.Replace(RefString("bar"), RefString("baz"), ReplaceAll)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "Hello, baz foo baz!", b.String())
}

func TestReplaceFromRight(t *testing.T) {
	b := AllocString("foo foo foo")
	n, err := b.Replace(RefString("foo"), RefString("X"), ReplaceFromRight)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "foo foo X", b.String())

	n, err = b.Replace(RefString("foo"), RefString("Y"), ReplaceFromRight|ReplaceAll)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "Y Y X", b.String())
}

func TestReplaceRestartsFromStart(t *testing.T) {
	// "aab" -> "ab" -> "b": the second match only exists after the first splice.
	b := AllocString("aab")
	n, err := b.Replace(RefString("ab"), RefString("b"), ReplaceAll)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "b", b.String())

	b = AllocString("baa")
	n, err = b.Replace(RefString("ba"), RefString("b"), ReplaceAll|ReplaceFromRight)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "b", b.String())
}

func TestReplaceEdgeCases(t *testing.T) {
	b := AllocString("aaa")

	n, err := b.Replace(RefString(""), RefString("x"), ReplaceAll)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = b.Replace(RefString("a"), RefString("ba"), ReplaceAll)
	require.ErrorIs(t, err, ErrReplaceLoop)
	require.Zero(t, n)
	require.Equal(t, "aaa", b.String())

	n, err = b.Replace(RefString("a"), RefString("ba"), 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "baaa", b.String())

	n, err = b.Replace(RefString("zz"), RefString("y"), ReplaceAll)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = b.Replace(RefString("a"), RefString(""), ReplaceAll)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "b", b.String())
}

func TestReplaceAllWithoutMatch(t *testing.T) {
	b := AllocString("bbb")
	v := b.View()
	n, err := b.Replace(RefString("a"), RefString("aa"), ReplaceAll)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, "bbb", b.String())
	require.NoError(t, v.Err(), "no match leaves the buffer untouched")
}

func TestReplaceAllRebuildsPattern(t *testing.T) {
	// "ab" -> "bbaa" never contains "ab", but each splice recreates it at the
	// boundary with the preceding 'a'.
	b := AllocString("aabb")
	done := make(chan struct{})
	var n int
	var err error
	go func() {
		defer close(done)
		n, err = b.Replace(RefString("ab"), RefString("bbaa"), ReplaceAll)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Replace did not return")
	}
	require.ErrorIs(t, err, ErrReplaceLoop)
	require.Positive(t, n)
	require.LessOrEqual(t, b.Len(), 20)
}

func TestReplaceAllBudgetAllowsLongRuns(t *testing.T) {
	// Equal length: every 'a' bubbles past every 'b'.
	b := AllocString("aaabbb")
	n, err := b.Replace(RefString("ab"), RefString("ba"), ReplaceAll)
	require.NoError(t, err)
	require.Equal(t, 9, n)
	require.Equal(t, "bbbaaa", b.String())

	// Growing, with each occurrence replaced once.
	b = AllocString("xaxax")
	n, err = b.Replace(RefString("a"), RefString("bb"), ReplaceAll)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "xbbxbbx", b.String())
}

func TestReplaceWithOwnView(t *testing.T) {
	b := AllocString("abcabc")
	n, err := b.Replace(b.Slice(0, 3), RefString("x"), ReplaceAll)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "xx", b.String())
}

func spliceReference(data []byte, off, n int, repl []byte) []byte {
	if n == 0 || off >= len(data) {
		if off > len(data) {
			off = len(data)
		}
		out := append([]byte(nil), data[:off]...)
		out = append(out, repl...)
		return append(out, data[off:]...)
	}
	if off+n > len(data) {
		n = len(data) - off
	}
	out := append([]byte(nil), data[:off]...)
	out = append(out, repl...)
	return append(out, data[off+n:]...)
}

func FuzzReplaceRange(f *testing.F) {
	f.Add([]byte("Hello, world!"), uint8(7), uint8(5), []byte("Go"))
	f.Add([]byte(""), uint8(0), uint8(0), []byte("x"))
	f.Fuzz(func(t *testing.T, data []byte, off, n uint8, repl []byte) {
		b := Alloc(data)
		require.NoError(t, b.ReplaceRange(int(off), int(n), Ref(repl)))
		require.Equal(t, spliceReference(data, int(off), int(n), repl), b.View().Bytes())
		require.LessOrEqual(t, b.Len(), b.Cap())
	})
}
