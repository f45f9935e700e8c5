package service

import (
	"net/http"

	"Spotlight/pkg/response"
)

var (
	ErrUnauthorized = response.NewError(http.StatusUnauthorized, response.KindUnauthorized, "unauthorized")

	ErrUserNotFound = response.NewError(http.StatusNotFound, response.KindNotFound, "user not found")
	ErrPostNotFound = response.NewError(http.StatusNotFound, response.KindNotFound, "post not found")

	ErrMediaNotFound = response.NewError(http.StatusNotFound, response.KindMediaNotFound, "image not found")

	ErrDanglingReference = response.NewError(http.StatusConflict, response.KindDanglingReference, "referenced record is missing")

	ErrVerificationFailed = response.NewError(http.StatusBadRequest, response.KindVerificationFailed, "webhook verification failed")
	ErrMissingSvixHeaders = response.NewError(http.StatusBadRequest, response.KindVerificationFailed, "missing svix headers")

	ErrInvalidArgument = response.NewError(http.StatusBadRequest, response.KindInvalidArgument, "invalid argument")
	ErrMalformedEvent  = response.NewError(http.StatusBadRequest, response.KindInvalidArgument, "malformed user event")

	ErrTooFrequent = response.NewError(http.StatusTooManyRequests, response.KindTooFrequent, "too many requests, try again later")
)
