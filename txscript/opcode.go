package txscript

import "fmt"

// Opcode byte values. This is the fixed bijection between symbolic opcode
// names and byte values 0x00..=0xFF. The mapping is consensus-critical and
// exported at a stable numerical value for external toolchains (wallets,
// language bindings): never recompute it, import these constants.
const (
	Op0     = 0x00 // OpFalse
	OpFalse = Op0

	// OpData1..OpData75: push the next N bytes onto the stack, N = value - OpData1 + 1.
	OpData1  = 0x01
	OpData2  = 0x02
	OpData3  = 0x03
	OpData4  = 0x04
	OpData5  = 0x05
	OpData6  = 0x06
	OpData7  = 0x07
	OpData8  = 0x08
	OpData9  = 0x09
	OpData10 = 0x0a
	OpData11 = 0x0b
	OpData12 = 0x0c
	OpData13 = 0x0d
	OpData14 = 0x0e
	OpData15 = 0x0f
	OpData16 = 0x10
	OpData17 = 0x11
	OpData18 = 0x12
	OpData19 = 0x13
	OpData20 = 0x14
	OpData21 = 0x15
	OpData22 = 0x16
	OpData23 = 0x17
	OpData24 = 0x18
	OpData25 = 0x19
	OpData26 = 0x1a
	OpData27 = 0x1b
	OpData28 = 0x1c
	OpData29 = 0x1d
	OpData30 = 0x1e
	OpData31 = 0x1f
	OpData32 = 0x20
	OpData33 = 0x21
	OpData34 = 0x22
	OpData35 = 0x23
	OpData36 = 0x24
	OpData37 = 0x25
	OpData38 = 0x26
	OpData39 = 0x27
	OpData40 = 0x28
	OpData41 = 0x29
	OpData42 = 0x2a
	OpData43 = 0x2b
	OpData44 = 0x2c
	OpData45 = 0x2d
	OpData46 = 0x2e
	OpData47 = 0x2f
	OpData48 = 0x30
	OpData49 = 0x31
	OpData50 = 0x32
	OpData51 = 0x33
	OpData52 = 0x34
	OpData53 = 0x35
	OpData54 = 0x36
	OpData55 = 0x37
	OpData56 = 0x38
	OpData57 = 0x39
	OpData58 = 0x3a
	OpData59 = 0x3b
	OpData60 = 0x3c
	OpData61 = 0x3d
	OpData62 = 0x3e
	OpData63 = 0x3f
	OpData64 = 0x40
	OpData65 = 0x41
	OpData66 = 0x42
	OpData67 = 0x43
	OpData68 = 0x44
	OpData69 = 0x45
	OpData70 = 0x46
	OpData71 = 0x47
	OpData72 = 0x48
	OpData73 = 0x49
	OpData74 = 0x4a
	OpData75 = 0x4b

	OpPushData1 = 0x4c
	OpPushData2 = 0x4d
	OpPushData4 = 0x4e
	Op1Negate   = 0x4f
	OpReserved  = 0x50

	Op1  = 0x51
	Op2  = 0x52
	Op3  = 0x53
	Op4  = 0x54
	Op5  = 0x55
	Op6  = 0x56
	Op7  = 0x57
	Op8  = 0x58
	Op9  = 0x59
	Op10 = 0x5a
	Op11 = 0x5b
	Op12 = 0x5c
	Op13 = 0x5d
	Op14 = 0x5e
	Op15 = 0x5f
	Op16 = 0x60

	OpNop         = 0x61
	OpVer         = 0x62
	OpIf          = 0x63
	OpNotIf       = 0x64
	OpVerIf       = 0x65
	OpVerNotIf    = 0x66
	OpElse        = 0x67
	OpEndIf       = 0x68
	OpVerify      = 0x69
	OpReturn      = 0x6a
	OpToAltStack  = 0x6b
	OpFromAltStack = 0x6c
	Op2Drop       = 0x6d
	Op2Dup        = 0x6e
	Op3Dup        = 0x6f
	Op2Over       = 0x70
	Op2Rot        = 0x71
	Op2Swap       = 0x72
	OpIfDup       = 0x73
	OpDepth       = 0x74
	OpDrop        = 0x75
	OpDup         = 0x76
	OpNip         = 0x77
	OpOver        = 0x78
	OpPick        = 0x79
	OpRoll        = 0x7a
	OpRot         = 0x7b
	OpSwap        = 0x7c
	OpTuck        = 0x7d

	OpCat    = 0x7e // disabled
	OpSubStr = 0x7f // disabled
	OpLeft   = 0x80 // disabled
	OpRight  = 0x81 // disabled
	OpSize   = 0x82
	OpInvert = 0x83 // disabled
	OpAnd    = 0x84 // disabled
	OpOr     = 0x85 // disabled
	OpXor    = 0x86 // disabled
	OpEqual  = 0x87
	OpEqualVerify = 0x88

	OpReserved1 = 0x89
	OpReserved2 = 0x8a
	Op1Add      = 0x8b
	Op1Sub      = 0x8c
	Op2Mul      = 0x8d // disabled
	Op2Div      = 0x8e // disabled
	OpNegate    = 0x8f
	OpAbs       = 0x90
	OpNot       = 0x91
	Op0NotEqual = 0x92
	OpAdd       = 0x93
	OpSub       = 0x94
	OpMul       = 0x95 // disabled
	OpDiv       = 0x96 // disabled
	OpMod       = 0x97 // disabled
	OpLShift    = 0x98 // disabled
	OpRShift    = 0x99 // disabled
	OpBoolAnd   = 0x9a
	OpBoolOr    = 0x9b
	OpNumEqual  = 0x9c
	OpNumEqualVerify = 0x9d
	OpNumNotEqual    = 0x9e
	OpLessThan       = 0x9f
	OpGreaterThan    = 0xa0
	OpLessThanOrEqual    = 0xa1
	OpGreaterThanOrEqual = 0xa2
	OpMin = 0xa3
	OpMax = 0xa4

	OpWithin = 0xa5

	OpSha256               = 0xa8
	OpBlake2b              = 0xaa
	OpCheckSigECDSA        = 0xab
	OpCheckSig             = 0xac
	OpCheckSigVerify       = 0xad
	OpCheckMultiSig        = 0xae
	OpCheckMultiSigVerify  = 0xaf
	OpCheckLockTimeVerify  = 0xb0
	OpCheckSequenceVerify  = 0xb1

	OpInvalidOpCode = 0xff
)

// opcodeNames maps every assigned name above to its byte value.
var opcodeNames = map[byte]string{
	Op0: "Op0", OpData1: "OpData1", OpData2: "OpData2", OpData3: "OpData3",
	OpData4: "OpData4", OpData5: "OpData5", OpData6: "OpData6", OpData7: "OpData7",
	OpData8: "OpData8", OpData9: "OpData9", OpData10: "OpData10", OpData11: "OpData11",
	OpData12: "OpData12", OpData13: "OpData13", OpData14: "OpData14", OpData15: "OpData15",
	OpData16: "OpData16", OpData17: "OpData17", OpData18: "OpData18", OpData19: "OpData19",
	OpData20: "OpData20", OpData21: "OpData21", OpData22: "OpData22", OpData23: "OpData23",
	OpData24: "OpData24", OpData25: "OpData25", OpData26: "OpData26", OpData27: "OpData27",
	OpData28: "OpData28", OpData29: "OpData29", OpData30: "OpData30", OpData31: "OpData31",
	OpData32: "OpData32", OpData33: "OpData33", OpData34: "OpData34", OpData35: "OpData35",
	OpData36: "OpData36", OpData37: "OpData37", OpData38: "OpData38", OpData39: "OpData39",
	OpData40: "OpData40", OpData41: "OpData41", OpData42: "OpData42", OpData43: "OpData43",
	OpData44: "OpData44", OpData45: "OpData45", OpData46: "OpData46", OpData47: "OpData47",
	OpData48: "OpData48", OpData49: "OpData49", OpData50: "OpData50", OpData51: "OpData51",
	OpData52: "OpData52", OpData53: "OpData53", OpData54: "OpData54", OpData55: "OpData55",
	OpData56: "OpData56", OpData57: "OpData57", OpData58: "OpData58", OpData59: "OpData59",
	OpData60: "OpData60", OpData61: "OpData61", OpData62: "OpData62", OpData63: "OpData63",
	OpData64: "OpData64", OpData65: "OpData65", OpData66: "OpData66", OpData67: "OpData67",
	OpData68: "OpData68", OpData69: "OpData69", OpData70: "OpData70", OpData71: "OpData71",
	OpData72: "OpData72", OpData73: "OpData73", OpData74: "OpData74", OpData75: "OpData75",
	OpPushData1: "OpPushData1", OpPushData2: "OpPushData2", OpPushData4: "OpPushData4",
	Op1Negate: "Op1Negate", OpReserved: "OpReserved",
	Op1: "Op1", Op2: "Op2", Op3: "Op3", Op4: "Op4", Op5: "Op5", Op6: "Op6", Op7: "Op7",
	Op8: "Op8", Op9: "Op9", Op10: "Op10", Op11: "Op11", Op12: "Op12", Op13: "Op13",
	Op14: "Op14", Op15: "Op15", Op16: "Op16",
	OpNop: "OpNop", OpVer: "OpVer", OpIf: "OpIf", OpNotIf: "OpNotIf", OpVerIf: "OpVerIf",
	OpVerNotIf: "OpVerNotIf", OpElse: "OpElse", OpEndIf: "OpEndIf", OpVerify: "OpVerify",
	OpReturn: "OpReturn", OpToAltStack: "OpToAltStack", OpFromAltStack: "OpFromAltStack",
	Op2Drop: "Op2Drop", Op2Dup: "Op2Dup", Op3Dup: "Op3Dup", Op2Over: "Op2Over",
	Op2Rot: "Op2Rot", Op2Swap: "Op2Swap", OpIfDup: "OpIfDup", OpDepth: "OpDepth",
	OpDrop: "OpDrop", OpDup: "OpDup", OpNip: "OpNip", OpOver: "OpOver", OpPick: "OpPick",
	OpRoll: "OpRoll", OpRot: "OpRot", OpSwap: "OpSwap", OpTuck: "OpTuck",
	OpCat: "OpCat", OpSubStr: "OpSubStr", OpLeft: "OpLeft", OpRight: "OpRight",
	OpSize: "OpSize", OpInvert: "OpInvert", OpAnd: "OpAnd", OpOr: "OpOr", OpXor: "OpXor",
	OpEqual: "OpEqual", OpEqualVerify: "OpEqualVerify",
	OpReserved1: "OpReserved1", OpReserved2: "OpReserved2", Op1Add: "Op1Add", Op1Sub: "Op1Sub",
	Op2Mul: "Op2Mul", Op2Div: "Op2Div", OpNegate: "OpNegate", OpAbs: "OpAbs", OpNot: "OpNot",
	Op0NotEqual: "Op0NotEqual", OpAdd: "OpAdd", OpSub: "OpSub", OpMul: "OpMul", OpDiv: "OpDiv",
	OpMod: "OpMod", OpLShift: "OpLShift", OpRShift: "OpRShift", OpBoolAnd: "OpBoolAnd",
	OpBoolOr: "OpBoolOr", OpNumEqual: "OpNumEqual", OpNumEqualVerify: "OpNumEqualVerify",
	OpNumNotEqual: "OpNumNotEqual", OpLessThan: "OpLessThan", OpGreaterThan: "OpGreaterThan",
	OpLessThanOrEqual: "OpLessThanOrEqual", OpGreaterThanOrEqual: "OpGreaterThanOrEqual",
	OpMin: "OpMin", OpMax: "OpMax", OpWithin: "OpWithin",
	OpSha256: "OpSha256", OpBlake2b: "OpBlake2b", OpCheckSigECDSA: "OpCheckSigECDSA",
	OpCheckSig: "OpCheckSig", OpCheckSigVerify: "OpCheckSigVerify",
	OpCheckMultiSig: "OpCheckMultiSig", OpCheckMultiSigVerify: "OpCheckMultiSigVerify",
	OpCheckLockTimeVerify: "OpCheckLockTimeVerify", OpCheckSequenceVerify: "OpCheckSequenceVerify",
	OpInvalidOpCode: "OpInvalidOpCode",
}

// OpcodeName returns the symbolic name for an opcode byte. Bytes with no
// assigned mnemonic (reserved/unused ranges) report as OpUnknownNNN — they
// are still encodable, just not semantically meaningful to this layer.
func OpcodeName(op byte) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OpUnknown%d", op)
}

// IsSmallInt reports whether op is Op0 or one of Op1..Op16.
func IsSmallInt(op byte) bool {
	return op == Op0 || (op >= Op1 && op <= Op16)
}
