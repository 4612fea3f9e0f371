package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("invalid parameters")
	ErrInvalidDateRange        = errors.New("start date must be before end date")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExist          = errors.New("email already registered")
	ErrUserInactive            = errors.New("account is deactivated")
	ErrPasswordIncorrect       = errors.New("incorrect email or password")
	ErrMissingLoginCredentials = errors.New("missing login credentials")
	ErrCampaignNotFound        = errors.New("campaign not found")
	ErrCampaignKeyMissing      = errors.New("campaign has no marketplace API key")
	ErrMarketplaceUnsupported  = errors.New("marketplace is not supported for synchronization")
	UnauthorizedError          = errors.New("permission denied")
	UnExpectedError            = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrInvalidDateRange:        BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserEmailExist:          BadRequest,
	ErrUserInactive:            Unauthorized,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrCampaignNotFound:        NotFound,
	ErrCampaignKeyMissing:      BadRequest,
	ErrMarketplaceUnsupported:  BadRequest,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
