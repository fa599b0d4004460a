package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type failure struct {
	code int
	msg  string
}

func TestOk(t *testing.T) {
	tests := []struct {
		name string
		v    int
	}{
		{"zero", 0},
		{"positive", 42},
		{"negative", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Ok[int, failure](tt.v)
			require.True(t, r.HasValue())
			require.Equal(t, tt.v, r.Value())

			v, ok := r.Get()
			require.True(t, ok)
			require.Equal(t, tt.v, v)
		})
	}
}

func TestFail(t *testing.T) {
	r := Fail[int](failure{code: 3, msg: "bad"})

	require.False(t, r.HasValue())
	require.Equal(t, failure{code: 3, msg: "bad"}, r.Err())

	v, ok := r.Get()
	require.False(t, ok)
	require.Zero(t, v)
}

func TestZeroValue(t *testing.T) {
	var r Result[string, failure]

	require.True(t, r.HasValue())
	require.Equal(t, "", r.Value())
}

func TestFrom(t *testing.T) {
	u := MakeUnexpected(failure{code: 9})
	require.Equal(t, 9, u.Failure().code)

	r := From[[]byte](u)
	require.False(t, r.HasValue())
	require.Equal(t, 9, r.Err().code)

	// The same failure converts into results with different success types.
	s := From[string](u)
	require.Equal(t, r.Err(), s.Err())
}

func TestPtr_MutatesInPlace(t *testing.T) {
	type point struct{ X, Y int }
	r := Ok[point, failure](point{X: 1})

	r.Ptr().Y = 5
	r.Ptr().X++

	require.Equal(t, point{X: 2, Y: 5}, r.Value())
}

func TestWrongSidePanics(t *testing.T) {
	ok := Ok[int, failure](1)
	bad := Fail[int](failure{code: 1})

	tests := []struct {
		name string
		fn   func()
		side Side
	}{
		{"Value on failure", func() { _ = bad.Value() }, SideValue},
		{"Ptr on failure", func() { _ = bad.Ptr() }, SideValue},
		{"Err on success", func() { _ = ok.Err() }, SideFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				rec := recover()
				require.NotNil(t, rec)
				accessErr, isAccess := rec.(*AccessError)
				require.True(t, isAccess)
				require.Equal(t, tt.side, accessErr.Side)
			}()
			tt.fn()
		})
	}
}

func TestAccessError_Error(t *testing.T) {
	require.Equal(t, "result: value accessed but result holds a failure", (&AccessError{Side: SideValue}).Error())
	require.Equal(t, "result: failure accessed but result holds a value", (&AccessError{Side: SideFailure}).Error())
}

func TestValueOr(t *testing.T) {
	require.Equal(t, 5, Ok[int, failure](5).ValueOr(9))
	require.Equal(t, 9, Fail[int](failure{}).ValueOr(9))
}

func TestMap(t *testing.T) {
	r := Map(Ok[int, failure](21), func(v int) string { return strconv.Itoa(v * 2) })
	require.Equal(t, "42", r.Value())

	called := false
	f := Map(Fail[int](failure{code: 2}), func(v int) string {
		called = true
		return ""
	})
	require.False(t, called)
	require.Equal(t, 2, f.Err().code)
}

func TestAndThen(t *testing.T) {
	half := func(v int) Result[int, failure] {
		if v%2 != 0 {
			return Fail[int](failure{code: 1, msg: "odd"})
		}
		return Ok[int, failure](v / 2)
	}

	require.Equal(t, 4, AndThen(Ok[int, failure](8), half).Value())
	require.Equal(t, "odd", AndThen(Ok[int, failure](7), half).Err().msg)
	require.Equal(t, 5, AndThen(Fail[int](failure{code: 5}), half).Err().code)
}

func TestString(t *testing.T) {
	require.Equal(t, "Ok(42)", Ok[int, failure](42).String())
	require.Equal(t, "Err({3 bad})", Fail[int](failure{code: 3, msg: "bad"}).String())
}

func TestOk_ZeroAllocations(t *testing.T) {
	var sink Result[uint64, failure]
	allocs := testing.AllocsPerRun(1000, func() {
		sink = Ok[uint64, failure](7)
	})
	require.Zero(t, allocs)
	require.True(t, sink.HasValue())
}
