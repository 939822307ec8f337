package integer

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var percent = MustDefinition("Percent", WithRange(0, 100))

func TestNew_Uninitialized(t *testing.T) {
	i := New(nil)
	assert.False(t, i.IsSet())
	assert.Equal(t, "", i.Name())
	assert.Equal(t, "<unset>", i.String())

	_, err := i.Value()
	require.ErrorIs(t, err, ErrUninitializedValue)

	_, err = i.Encode()
	require.ErrorIs(t, err, ErrUninitializedValue)

	_, err = i.Int64()
	require.ErrorIs(t, err, ErrUninitializedValue)
}

func TestNewNamed(t *testing.T) {
	i := NewNamed(nil, "lat")
	assert.Equal(t, "lat", i.Name())
	assert.False(t, i.IsSet())

	i.SetName("latitude")
	assert.Equal(t, "latitude", i.Name())
}

func TestName_FallsBackToDefinition(t *testing.T) {
	i := New(percent)
	assert.Equal(t, "Percent", i.Name())
	i.SetName("battery")
	assert.Equal(t, "battery", i.Name())
}

func TestNewWithValue(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		i, err := NewWithInt64(percent, 42)
		require.NoError(t, err)
		v, err := i.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("out of range", func(t *testing.T) {
		i, err := NewWithInt64(percent, 101)
		require.ErrorIs(t, err, ErrConstraintViolation)
		assert.Nil(t, i)
	})

	t.Run("named", func(t *testing.T) {
		i, err := NewNamedWithValue(percent, "battery", big.NewInt(7))
		require.NoError(t, err)
		assert.Equal(t, "battery", i.Name())
		assert.Equal(t, "7", i.String())
	})

	t.Run("named out of range", func(t *testing.T) {
		_, err := NewNamedWithValue(percent, "battery", big.NewInt(-1))
		var cerr *ConstraintError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "battery", cerr.Name)
		assert.Equal(t, "-1", cerr.Value.String())
		assert.Equal(t, "0", cerr.Lower.String())
		assert.Equal(t, "100", cerr.Upper.String())
	})
}

func TestSetValue_ConstraintViolationKeepsState(t *testing.T) {
	t.Run("no prior value", func(t *testing.T) {
		i := New(percent)
		err := i.SetInt64(150)
		require.ErrorIs(t, err, ErrConstraintViolation)
		_, err = i.Value()
		require.ErrorIs(t, err, ErrUninitializedValue)
	})

	t.Run("prior value", func(t *testing.T) {
		i := New(percent)
		require.NoError(t, i.SetInt64(10))
		require.ErrorIs(t, i.SetInt64(-5), ErrConstraintViolation)
		v, err := i.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(10), v)
	})

	t.Run("nil value", func(t *testing.T) {
		i := New(nil)
		require.ErrorIs(t, i.SetValue(nil), ErrUninitializedValue)
		assert.False(t, i.IsSet())
	})
}

func TestSetValue_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 100, false},
		{"below", -1, true},
		{"above", 101, true},
		{"middle", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(percent).SetInt64(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConstraintViolation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSetValue_StoresCopy(t *testing.T) {
	i := New(nil)
	v := big.NewInt(10)
	require.NoError(t, i.SetValue(v))
	v.SetInt64(20)

	got, err := i.Value()
	require.NoError(t, err)
	assert.Equal(t, "10", got.String())

	got.SetInt64(30)
	assert.Equal(t, "10", i.String())
}

func TestSetValue_Idempotent(t *testing.T) {
	a := New(percent)
	b := New(percent)
	require.NoError(t, a.SetInt64(64))
	require.NoError(t, b.SetInt64(64))
	require.NoError(t, b.SetInt64(64))

	ea, err := a.Encode()
	require.NoError(t, err)
	eb, err := b.Encode()
	require.NoError(t, err)
	assert.Equal(t, ea, eb)
	assert.Equal(t, a.String(), b.String())
}

func TestEncode_Scenarios(t *testing.T) {
	tests := []struct {
		value    int64
		expected []byte
	}{
		{5, []byte{0x05}},
		{-1, []byte{0xFF}},
		{128, []byte{0x00, 0x80}},
	}

	for _, tt := range tests {
		t.Run(big.NewInt(tt.value).String(), func(t *testing.T) {
			i, err := NewWithInt64(nil, tt.value)
			require.NoError(t, err)
			got, err := i.Encode()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			fresh := New(nil)
			require.NoError(t, fresh.Decode(tt.expected))
			v, err := fresh.Int64()
			require.NoError(t, err)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestAppendContents(t *testing.T) {
	i, err := NewWithInt64(nil, 256)
	require.NoError(t, err)
	out, err := i.AppendContents([]byte{0x02, 0x02})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x02, 0x01, 0x00}, out)

	prefix := []byte{0xAA}
	out, err = New(nil).AppendContents(prefix)
	require.ErrorIs(t, err, ErrUninitializedValue)
	assert.Equal(t, prefix, out)
}

func TestDecode_FailureKeepsState(t *testing.T) {
	i, err := NewWithInt64(percent, 10)
	require.NoError(t, err)

	require.ErrorIs(t, i.Decode(nil), ErrMalformedEncoding)
	require.ErrorIs(t, i.Decode([]byte{0x00, 0x05}), ErrMalformedEncoding)
	require.ErrorIs(t, i.Decode([]byte{0x00, 0x96}), ErrConstraintViolation)

	assert.Equal(t, "10", i.String())
}

func TestDecode_Lenient(t *testing.T) {
	def := MustDefinition("loose", WithPolicy(PolicyLenient))
	i := New(def)
	require.NoError(t, i.Decode([]byte{0x00, 0x00, 0x05}))

	got, err := i.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05}, got)
}

func TestInt64_Overflow(t *testing.T) {
	huge := new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1))
	i, err := NewWithValue(nil, huge)
	require.NoError(t, err)
	_, err = i.Int64()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestDefinition(t *testing.T) {
	t.Run("invalid bounds", func(t *testing.T) {
		_, err := NewDefinition("bad", WithRange(10, 1))
		require.ErrorIs(t, err, ErrInvalidBounds)
		assert.Panics(t, func() { MustDefinition("bad", WithRange(10, 1)) })
	})

	t.Run("equal bounds", func(t *testing.T) {
		def, err := NewDefinition("one", WithRange(1, 1))
		require.NoError(t, err)
		assert.True(t, def.Contains(big.NewInt(1)))
		assert.False(t, def.Contains(big.NewInt(2)))
	})

	t.Run("one sided", func(t *testing.T) {
		def := MustDefinition("natural", WithLowerBound(big.NewInt(0)))
		assert.True(t, def.Constrained())
		assert.Nil(t, def.Upper())
		assert.True(t, def.Contains(new(big.Int).Lsh(big.NewInt(1), 200)))
		assert.False(t, def.Contains(big.NewInt(-1)))
		assert.Equal(t, "natural ::= INTEGER (0..MAX)", def.String())
	})

	t.Run("nil definition", func(t *testing.T) {
		var def *Definition
		assert.False(t, def.Constrained())
		assert.True(t, def.Contains(big.NewInt(-1)))
		assert.Equal(t, PolicyStrict, def.Policy())
		assert.NoError(t, def.Check("", big.NewInt(1)))
	})

	t.Run("bounds are copied", func(t *testing.T) {
		lower := big.NewInt(0)
		def := MustDefinition("copy", WithLowerBound(lower))
		lower.SetInt64(5)
		assert.Equal(t, "0", def.Lower().String())
		def.Lower().SetInt64(9)
		assert.Equal(t, "0", def.Lower().String())
	})

	t.Run("with", func(t *testing.T) {
		loose, err := percent.With(WithPolicy(PolicyLenient))
		require.NoError(t, err)
		assert.Equal(t, PolicyLenient, loose.Policy())
		assert.Equal(t, PolicyStrict, percent.Policy())
		assert.Equal(t, percent.String(), loose.String())

		_, err = percent.With(WithLowerBound(big.NewInt(101)))
		require.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "Percent ::= INTEGER (0..100)", percent.String())
		assert.Equal(t, "INTEGER ::= INTEGER", MustDefinition("").String())
	})
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"", PolicyStrict, false},
		{"strict", PolicyStrict, false},
		{"lenient", PolicyLenient, false},
		{"loose", PolicyStrict, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Policy {
	p, err := ParsePolicy(s)
	require.NoError(t, err)
	return p
}

func TestConstraintError_Message(t *testing.T) {
	err := percent.Check("", big.NewInt(150))
	require.ErrorIs(t, err, ErrConstraintViolation)
	assert.Equal(t, "integer: Percent value 150 outside range (0..100)", err.Error())
}

func BenchmarkInteger_Encode(b *testing.B) {
	i, _ := NewWithInt64(nil, -900000000)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i.Encode()
	}
}

func BenchmarkInteger_Decode(b *testing.B) {
	data := []byte{0xCA, 0x5B, 0x17, 0x00}
	i := New(nil)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i.Decode(data)
	}
}
