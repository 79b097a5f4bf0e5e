// Package services defines the business logic for the optimization
// pipeline: extraction, generation, quota enforcement, and identity
// capture. This file centralizes service-level error values so that they
// can be consistently returned by service methods and checked by callers.
//
// The error text here IS the user-facing message contract: the component
// that detects a failure owns its wording, and the HTTP layer passes the
// text through to the client unchanged. Translation into status codes is
// performed at the handler layer.
package services

import "errors"

// Extraction failures (mapped to 400 by handlers: a bad or inaccessible
// listing is a request problem from the caller's perspective).
var (
	// ErrExtractNetwork indicates the AI service was unreachable while
	// fetching the listing.
	ErrExtractNetwork = errors.New("Couldn't fetch the listing. Please check your internet connection and try again.")

	// ErrExtractFormat indicates the extraction reply could not be parsed
	// as the expected structure.
	ErrExtractFormat = errors.New("Couldn't fetch the listing. The page format may have changed. Please try again.")

	// ErrExtractMissingFields indicates a parseable reply whose title or
	// description was empty or absent.
	ErrExtractMissingFields = errors.New("Could not extract product details from the URL.")

	// ErrExtractFailed is the extraction catch-all.
	ErrExtractFailed = errors.New("Couldn't fetch the listing. Please check the URL and try again.")
)

// Generation failures (mapped to 500 by handlers: the input was accepted
// but the system could not produce output).
var (
	// ErrGenerateNetwork indicates a transport failure during generation.
	ErrGenerateNetwork = errors.New("Optimization failed due to network issues. Please retry.")

	// ErrGenerateFormat indicates the generation reply was not valid JSON
	// or was missing required fields.
	ErrGenerateFormat = errors.New("Optimization failed. The AI returned an unexpected format. Please retry.")

	// ErrGenerateBusy indicates the AI service itself rejected the call
	// for quota or rate-limit reasons (distinct from this application's
	// daily quota).
	ErrGenerateBusy = errors.New("Optimization failed due to high demand. Please try again in a few moments.")

	// ErrGenerateFailed is the generation catch-all.
	ErrGenerateFailed = errors.New("Optimization failed. Please retry in a few moments.")
)

// Quota and identity errors.
var (
	// ErrQuotaExceeded is returned when the email has already used its
	// daily allowance. Handlers map it to 429 with the rate-limit body.
	ErrQuotaExceeded = errors.New("Daily limit reached. Request more access:")

	// ErrNameRequired is returned when the identity name is blank after
	// trimming.
	ErrNameRequired = errors.New("Name is required")

	// ErrEmailInvalid is returned when the address fails the intentionally
	// weak shape check (must contain "@").
	ErrEmailInvalid = errors.New("Valid email is required")

	// ErrEmailExists is returned when registering an address that was
	// already captured.
	ErrEmailExists = errors.New("email already registered")
)
