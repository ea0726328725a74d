// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error to allow easy comparison
package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrAssetNotFound                = NotFoundError("asset not found")
	ErrBalanceOverflow              = InvalidError("balance overflow")
	ErrBidTooLow                    = InvalidError("bid too low")
	ErrCallerIsOwner                = InvalidError("caller is the current owner")
	ErrCannotDecodeIdentity         = RecordError("cannot decode identity")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = InvalidError("checksum mismatch")
	ErrInsufficientFunds            = InvalidError("insufficient funds")
	ErrInsufficientPayment          = InvalidError("insufficient payment")
	ErrInvalidIdentityLength        = InvalidError("identity length is invalid")
	ErrInvalidPercentage            = InvalidError("percentage is out of range")
	ErrInvalidPoolPrefix            = InvalidError("pool prefix is invalid")
	ErrInvalidStructure             = RecordError("record structure is invalid")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNoCurrentBid                 = NotFoundError("no current bid")
	ErrNotAvailableDuringNormal     = ProcessError("not available during normal operation")
	ErrNotAvailableDuringStartup    = ProcessError("not available during startup")
	ErrNotCurrentBidder             = InvalidError("not the current bidder")
	ErrNotForSale                   = InvalidError("asset is not for sale")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotOwner                     = InvalidError("not the asset owner")
	ErrNotWhitelisted               = InvalidError("creator is not whitelisted")
	ErrRateLimiting                 = ProcessError("rate limiting active")
	ErrSalePriceBelowCurrentBid     = InvalidError("sale price is below the current bid")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrTransferApprovalForbidden    = InvalidError("transfer approval is forbidden")
	ErrUnauthorized                 = InvalidError("caller is not the registry owner")
	ErrUriAlreadyUsed               = ExistsError("uri already used")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
