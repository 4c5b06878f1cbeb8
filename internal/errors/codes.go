// Package errors provides structured domain errors for the Ekub ledger.
package errors

import "connectrpc.com/connect"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeInvalidRequest Code = "INVALID_REQUEST"
	CodeInvalidConfig  Code = "INVALID_CONFIG"
	CodeInvalidAmount  Code = "INVALID_AMOUNT"

	// Business rule errors
	CodeInsufficientFunds  Code = "INSUFFICIENT_FUNDS"
	CodeGroupFull          Code = "GROUP_FULL"
	CodeAlreadyMember      Code = "ALREADY_MEMBER"
	CodeEmptyPool          Code = "EMPTY_POOL"
	CodeNotAMember         Code = "NOT_A_MEMBER"
	CodeMemberNotFound     Code = "MEMBER_NOT_FOUND"
	CodeGroupNotActive     Code = "GROUP_NOT_ACTIVE"
	CodeRotationIncomplete Code = "ROTATION_INCOMPLETE"
	CodePoolNotEmpty       Code = "POOL_NOT_EMPTY"
	CodeDepositMismatch    Code = "DEPOSIT_MISMATCH"

	// Access errors
	CodePermissionDenied Code = "PERMISSION_DENIED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// ConnectCode maps domain codes to Connect status codes.
func (c Code) ConnectCode() connect.Code {
	switch c {
	case CodeInvalidRequest,
		CodeInvalidConfig,
		CodeInvalidAmount:
		return connect.CodeInvalidArgument

	case CodeInsufficientFunds,
		CodeGroupFull,
		CodeEmptyPool,
		CodeNotAMember,
		CodeGroupNotActive,
		CodeRotationIncomplete,
		CodePoolNotEmpty,
		CodeDepositMismatch:
		return connect.CodeFailedPrecondition

	case CodeAlreadyMember:
		return connect.CodeAlreadyExists

	case CodeNotFound,
		CodeMemberNotFound:
		return connect.CodeNotFound

	case CodePermissionDenied:
		return connect.CodePermissionDenied

	default:
		return connect.CodeInternal
	}
}
