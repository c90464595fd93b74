package txscript

import "testing"

func TestOpcodeBitExactValues(t *testing.T) {
	tests := map[string]struct {
		got  byte
		want byte
	}{
		"Op0":                  {Op0, 0x00},
		"OpData1":               {OpData1, 0x01},
		"OpData75":              {OpData75, 0x4b},
		"OpPushData1":           {OpPushData1, 0x4c},
		"OpPushData2":           {OpPushData2, 0x4d},
		"OpPushData4":           {OpPushData4, 0x4e},
		"Op1Negate":             {Op1Negate, 0x4f},
		"Op1":                   {Op1, 0x51},
		"Op16":                  {Op16, 0x60},
		"OpReturn":               {OpReturn, 0x6a},
		"OpDup":                  {OpDup, 0x76},
		"OpEqual":                {OpEqual, 0x87},
		"OpEqualVerify":          {OpEqualVerify, 0x88},
		"OpSha256":               {OpSha256, 0xa8},
		"OpBlake2b":              {OpBlake2b, 0xaa},
		"OpCheckSigECDSA":        {OpCheckSigECDSA, 0xab},
		"OpCheckSig":             {OpCheckSig, 0xac},
		"OpCheckSigVerify":       {OpCheckSigVerify, 0xad},
		"OpCheckMultiSig":        {OpCheckMultiSig, 0xae},
		"OpCheckMultiSigVerify":  {OpCheckMultiSigVerify, 0xaf},
		"OpCheckLockTimeVerify":  {OpCheckLockTimeVerify, 0xb0},
		"OpCheckSequenceVerify":  {OpCheckSequenceVerify, 0xb1},
		"OpInvalidOpCode":        {OpInvalidOpCode, 0xff},
	}

	for name, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = 0x%02x, want 0x%02x", name, tt.got, tt.want)
		}
	}
}

func TestIsSmallInt(t *testing.T) {
	for v := byte(Op1); v <= Op16; v++ {
		if !IsSmallInt(v) {
			t.Errorf("IsSmallInt(0x%02x) = false, want true", v)
		}
	}
	if !IsSmallInt(Op0) {
		t.Errorf("IsSmallInt(Op0) = false, want true")
	}
	if IsSmallInt(Op1Negate) {
		t.Errorf("IsSmallInt(Op1Negate) = true, want false")
	}
	if IsSmallInt(OpDup) {
		t.Errorf("IsSmallInt(OpDup) = true, want false")
	}
}

func TestOpcodeNameUnknownFallback(t *testing.T) {
	// Every byte 0x00..0xff must resolve to a name, named or synthesized,
	// per the opcode table's bijection guarantee.
	for v := 0; v <= 0xff; v++ {
		name := OpcodeName(byte(v))
		if name == "" {
			t.Fatalf("OpcodeName(0x%02x) returned empty string", v)
		}
	}
}
