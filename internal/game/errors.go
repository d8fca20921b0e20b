package game

import (
	"errors"

	"github.com/everforgeworks/umami-lab/internal/dish"
)

// Error messages
const (
	ErrMsgWrongPhase             = "action not allowed in the current phase"
	ErrMsgInsufficientFunds      = "not enough money"
	ErrMsgInsufficientReputation = "not enough reputation"
	ErrMsgUpgradeOwned           = "upgrade already owned"
	ErrMsgUnknownIngredient      = "unknown ingredient"
	ErrMsgUnknownUpgrade         = "unknown upgrade"
	ErrMsgOutOfStock             = "ingredient out of stock"
	ErrMsgNoCustomer             = "no customer is waiting"
	ErrMsgEmptyDish              = "dish has no ingredients"
)

// Rejected transitions. State is unchanged whenever one of these is returned.
var (
	ErrWrongPhase             = errors.New(ErrMsgWrongPhase)
	ErrInsufficientFunds      = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientReputation = errors.New(ErrMsgInsufficientReputation)
	ErrUpgradeOwned           = errors.New(ErrMsgUpgradeOwned)
	ErrUnknownIngredient      = errors.New(ErrMsgUnknownIngredient)
	ErrUnknownUpgrade         = errors.New(ErrMsgUnknownUpgrade)
	ErrOutOfStock             = errors.New(ErrMsgOutOfStock)
	ErrNoCustomer             = errors.New(ErrMsgNoCustomer)
	ErrEmptyDish              = errors.New(ErrMsgEmptyDish)

	ErrDishFull     = dish.ErrDishFull
	ErrInvalidIndex = dish.ErrInvalidIndex
)
