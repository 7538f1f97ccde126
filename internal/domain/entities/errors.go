package entities

import "errors"

var (
	ErrInvalidStatus         = errors.New("invalid service status")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPaymentKind    = errors.New("invalid payment kind")
	ErrInvalidLineItem       = errors.New("invalid line item")
	ErrInvalidInspectionPart = errors.New("invalid inspection part")
)
