package domain

import (
	"errors"
)

var (
	MessageSuccessGetFlag    = "flag retrieved successfully"
	MessageSuccessSetFlag    = "flag set successfully"
	MessageSuccessRemoveFlag = "flag removed successfully"

	MessageFailedGetFlag    = "failed to retrieve flag"
	MessageFailedSetFlag    = "failed to set flag"
	MessageFailedRemoveFlag = "failed to remove flag"

	ErrFlagNotFound = errors.New("flag not found")
)

type (
	SetFlagRequest struct {
		Value string `json:"value" validate:"required"`
	}

	FlagResponse struct {
		Key   string `json:"key"`
		Value string `json:"value"`
		Set   bool   `json:"set"`
	}
)
