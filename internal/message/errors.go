package message

import "errors"

// Wire-decoding sentinels. Each aborts decoding of the current message
// only; the orchestrator continues with the next query.
var (
	ErrUnknownOpcode    = errors.New("message: unknown opcode")
	ErrReservedBitsSet  = errors.New("message: reserved header bits set")
	ErrWrongRdataLength = errors.New("message: rdata parser did not consume exactly rdlength bytes")
	ErrQueryOnlyType    = errors.New("message: type is query-only and cannot appear as an RR body")
)
