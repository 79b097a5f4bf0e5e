// Package listing validates Etsy listing URLs. Validation is a pure
// function with no side effects; it never panics on garbage input.
//
// Exactly one of four failure classes is reported, in check order: the
// first applicable failure wins. A malformed URL is reported before the
// domain is inspected, and a wrong-domain URL is reported before the
// listing-path check runs.
package listing

import (
	"errors"
	"net/url"
	"strings"
)

// Validation failures, one per class. The messages are the user-facing
// contract and are passed to the client verbatim.
var (
	// ErrMissingURL: empty or whitespace-only input.
	ErrMissingURL = errors.New("URL is required")

	// ErrInvalidFormat: the input is not a parseable absolute URL.
	ErrInvalidFormat = errors.New("Invalid URL format. Please provide a valid Etsy listing URL.")

	// ErrNotEtsy: a well-formed URL whose host is not etsy.com or a
	// subdomain, or whose scheme is not HTTP(S). Script, file, and data
	// URIs land here rather than crashing the parser.
	ErrNotEtsy = errors.New("This doesn't appear to be an Etsy URL. Please provide a valid Etsy listing link.")

	// ErrNotListing: an Etsy URL that points at a shop, search, category,
	// or cart page instead of a specific product listing.
	ErrNotListing = errors.New("This doesn't appear to be an Etsy listing URL. Please provide a link to a specific product listing.")
)

// listingSegment identifies a product page within the URL path.
const listingSegment = "/listing/"

// ValidateURL reports whether raw is a syntactically valid, absolute
// HTTP(S) URL on the Etsy domain whose path identifies a specific product
// listing. A nil return means valid; otherwise one of the four sentinel
// errors above is returned.
//
// Query strings, fragments, explicit ports, percent-encoding, trailing
// slashes, and scheme/host case never affect the outcome.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrMissingURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidFormat
	}
	if u.Scheme == "" {
		// Relative references ("etsy.com/listing/1") are not URLs here.
		return ErrInvalidFormat
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return ErrNotEtsy
	}

	host := strings.ToLower(u.Hostname())
	if host != "etsy.com" && host != "www.etsy.com" && !strings.HasSuffix(host, ".etsy.com") {
		return ErrNotEtsy
	}

	if !strings.Contains(u.Path, listingSegment) {
		return ErrNotListing
	}

	return nil
}
