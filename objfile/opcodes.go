package objfile

// Wire opcode bytes for the instruction stream, spec §4.3, in wire
// order. OpPush0 begins the 41-opcode run reserved for Push0..Push40
// (OpPush0..OpPush0+40 inclusive); every other mnemonic has one fixed
// byte below or above that run.
const (
	OpNop                byte = 0
	OpExit               byte = 1
	OpSwapSites          byte = 2
	OpSetSite            byte = 3
	OpSetField           byte = 4
	OpSetSiteField       byte = 5
	OpGetSite            byte = 6
	OpGetField           byte = 7
	OpGetSiteField       byte = 8
	OpGetSignedField     byte = 9
	OpGetSignedSiteField byte = 10
	OpGetType            byte = 11
	OpGetParameter       byte = 12
	OpScan               byte = 13
	OpSaveSymmetries     byte = 14
	OpUseSymmetries      byte = 15
	OpRestoreSymmetries  byte = 16
	OpPush0              byte = 17
	OpPush40             byte = 57
	OpPush               byte = 58
	OpPop                byte = 59
	OpDup                byte = 60
	OpOver               byte = 61
	OpSwap               byte = 62
	OpRot                byte = 63
	OpCall               byte = 64
	OpRet                byte = 65
	OpChecksum           byte = 66
	OpAdd                byte = 67
	OpSub                byte = 68
	OpNeg                byte = 69
	OpMod                byte = 70
	OpMul                byte = 71
	OpDiv                byte = 72
	OpLess               byte = 73
	OpLessEqual          byte = 74
	OpOr                 byte = 75
	OpAnd                byte = 76
	OpXor                byte = 77
	OpEqual              byte = 78
	OpBitCount           byte = 79
	OpBitScanForward     byte = 80
	OpBitScanReverse     byte = 81
	OpLShift             byte = 82
	OpRShift             byte = 83
	OpJump               byte = 84
	OpJumpRelativeOffset byte = 85
	OpJumpZero           byte = 86
	OpJumpNonZero        byte = 87
	OpSetPaint           byte = 88
	OpGetPaint           byte = 89
	OpRand               byte = 90
)
