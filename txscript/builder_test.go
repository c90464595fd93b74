package txscript

import (
	"bytes"
	"math"
	"testing"
)

func TestAddDataCanonicalPushes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{Op0}},
		{"single-one", []byte{1}, []byte{Op1}},
		{"single-negative-one", []byte{0x81}, []byte{Op1Negate}},
		{"two-bytes", []byte{0, 1}, []byte{OpData1 + 1, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New().AddData(tt.data)
			if err := b.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(b.Script(), tt.want) {
				t.Fatalf("AddData(%v) = %x, want %x", tt.data, b.Script(), tt.want)
			}
		})
	}
}

func TestAddDataPushDataThresholds(t *testing.T) {
	data75 := make([]byte, 75)
	for i := range data75 {
		data75[i] = byte(i)
	}
	want75 := append([]byte{OpData1 + 74}, data75...)
	b := New().AddData(data75)
	if !bytes.Equal(b.Script(), want75) {
		t.Fatalf("75-byte push = %x, want %x", b.Script(), want75)
	}

	data76 := make([]byte, 76)
	want76 := append([]byte{OpPushData1, 76}, data76...)
	b = New().AddData(data76)
	if !bytes.Equal(b.Script(), want76) {
		t.Fatalf("76-byte push = %x, want %x", b.Script(), want76)
	}

	data256 := make([]byte, 256)
	want256 := append([]byte{OpPushData2, 0x00, 0x01}, data256...)
	b = New().AddData(data256)
	if !bytes.Equal(b.Script(), want256) {
		t.Fatalf("256-byte push = %x, want %x", b.Script(), want256)
	}
}

func TestAddDataSmallIntRange(t *testing.T) {
	for v := 1; v <= 16; v++ {
		b := New().AddData([]byte{byte(v)})
		want := []byte{byte(Op1 + (v - 1))}
		if !bytes.Equal(b.Script(), want) {
			t.Fatalf("AddData([%d]) = %x, want %x", v, b.Script(), want)
		}
	}
}

func TestCanonicalDataSizeMatchesAddData(t *testing.T) {
	// AddData rejects anything above MaxScriptElementSize before the size
	// math below ever runs, so the comparison stays within that bound.
	sizes := []int{0, 1, 2, 75, 76, 255, 256, MaxScriptElementSize}
	for _, n := range sizes {
		d := make([]byte, n)
		if n == 1 {
			d[0] = 42 // avoid the single-byte small-int/negate special cases
		}
		got := CanonicalDataSize(d)
		b := New().AddData(d)
		if err := b.Err(); err != nil {
			t.Fatalf("size %d: unexpected error %v", n, err)
		}
		if len(b.Script()) != got {
			t.Fatalf("size %d: CanonicalDataSize=%d, actual appended=%d", n, got, len(b.Script()))
		}
	}
}

func TestAddOpAtomicOnFailure(t *testing.T) {
	b := New()
	full := make([]byte, MaxScriptsSize)
	b.AddOps(full)
	if b.Err() != nil {
		t.Fatalf("filling to the cap should not fail: %v", b.Err())
	}
	before := append([]byte(nil), b.Script()...)

	b.AddOp(OpNop)
	if b.Err() == nil {
		t.Fatalf("expected ErrScriptTooLong")
	}
	if !bytes.Equal(b.Script(), before) {
		t.Fatalf("buffer changed after a failed AddOp")
	}

	se, ok := b.Err().(*ScriptError)
	if !ok || se.Code != ErrScriptTooLong {
		t.Fatalf("expected ErrScriptTooLong, got %v", b.Err())
	}
}

func TestAddDataElementTooLarge(t *testing.T) {
	b := New()
	oversized := make([]byte, MaxScriptElementSize+1)
	b.AddData(oversized)
	se, ok := b.Err().(*ScriptError)
	if !ok || se.Code != ErrElementTooLarge {
		t.Fatalf("expected ErrElementTooLarge, got %v", b.Err())
	}
	if len(b.Script()) != 0 {
		t.Fatalf("buffer should remain empty after a rejected push, got %x", b.Script())
	}
}

func TestDrainIdempotence(t *testing.T) {
	b := New().AddOp(OpDup)
	first := b.Drain()
	if len(first) == 0 {
		t.Fatalf("expected non-empty drain")
	}
	second := b.Drain()
	if len(second) != 0 {
		t.Fatalf("second drain should be empty, got %x", second)
	}
}

func TestScriptNonConsuming(t *testing.T) {
	b := New().AddOp(OpDup).AddOp(OpBlake2b)
	first := b.Script()
	second := b.Script()
	if !bytes.Equal(first, second) {
		t.Fatalf("successive Script() calls diverged: %x vs %x", first, second)
	}
}

func TestAddI64SmallInts(t *testing.T) {
	tests := []struct {
		v    int64
		want []byte
	}{
		{0, []byte{Op0}},
		{1, []byte{Op1}},
		{16, []byte{Op16}},
		{-1, []byte{Op1Negate}},
		{17, []byte{OpData1, 17}},
		{-17, []byte{OpData1, 17 | 0x80}},
	}
	for _, tt := range tests {
		b := New().AddI64(tt.v)
		if !bytes.Equal(b.Script(), tt.want) {
			t.Fatalf("AddI64(%d) = %x, want %x", tt.v, b.Script(), tt.want)
		}
	}
}

func TestAddI64MinInt64DoesNotPanic(t *testing.T) {
	b := New().AddI64(math.MinInt64)
	if err := b.Err(); err != nil {
		t.Fatalf("AddI64(math.MinInt64) failed: %v", err)
	}
	if len(b.Script()) == 0 {
		t.Fatalf("AddI64(math.MinInt64) produced an empty script")
	}
}

func TestAddLockTimeAndSequence(t *testing.T) {
	b := New().AddLockTime(0)
	if !bytes.Equal(b.Script(), []byte{Op0}) {
		t.Fatalf("AddLockTime(0) = %x, want %x", b.Script(), []byte{Op0})
	}

	b = New().AddSequence(16)
	if !bytes.Equal(b.Script(), []byte{Op16}) {
		t.Fatalf("AddSequence(16) = %x, want %x", b.Script(), []byte{Op16})
	}

	b = New().AddLockTime(0x80)
	want := []byte{OpData1 + 1, 0x80, 0x00}
	if !bytes.Equal(b.Script(), want) {
		t.Fatalf("AddLockTime(0x80) = %x, want %x", b.Script(), want)
	}
}

func TestAddOpsRecognizesEveryByteValue(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	b := New().AddOps(all)
	if b.Err() != nil {
		t.Fatalf("every byte value 0x00..0xff must be a recognized opcode: %v", b.Err())
	}
}
