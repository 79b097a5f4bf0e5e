package listing

import (
	"errors"
	"testing"
)

func TestValidateURL_Valid(t *testing.T) {
	cases := []string{
		"https://www.etsy.com/listing/123456789/handmade-ceramic-mug",
		"https://etsy.com/listing/987654321",
		"http://www.etsy.com/listing/1",
		"https://WWW.ETSY.COM/listing/42",
		"https://www.etsy.com:443/listing/42",
		"https://www.etsy.com/listing/42?ref=shop_home&frs=1",
		"https://www.etsy.com/listing/42/item#reviews",
		"https://www.etsy.com/uk/listing/42/localized-path",
		"https://shop.etsy.com/listing/42",
	}
	for _, c := range cases {
		if err := ValidateURL(c); err != nil {
			t.Errorf("ValidateURL(%q) = %v; want nil", c, err)
		}
	}
}

func TestValidateURL_Missing(t *testing.T) {
	for _, c := range []string{"", "   ", "\t\n"} {
		if err := ValidateURL(c); !errors.Is(err, ErrMissingURL) {
			t.Errorf("ValidateURL(%q) = %v; want ErrMissingURL", c, err)
		}
	}
}

func TestValidateURL_InvalidFormat(t *testing.T) {
	cases := []string{
		"not a url",
		"etsy.com/listing/123", // relative reference, no scheme
		"://missing-scheme",
		"ht tp://etsy.com/listing/1",
	}
	for _, c := range cases {
		if err := ValidateURL(c); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ValidateURL(%q) = %v; want ErrInvalidFormat", c, err)
		}
	}
}

func TestValidateURL_NotEtsy(t *testing.T) {
	cases := []string{
		"https://www.amazon.com/dp/B000000",
		"https://www.ebay.com/itm/123",
		"https://notetsy.com/listing/123",   // suffix match must include the dot
		"https://etsy.com.evil.io/listing/1", // etsy.com as a prefix, not the domain
		"ftp://www.etsy.com/listing/123",
		"javascript:alert(1)",
	}
	for _, c := range cases {
		if err := ValidateURL(c); !errors.Is(err, ErrNotEtsy) {
			t.Errorf("ValidateURL(%q) = %v; want ErrNotEtsy", c, err)
		}
	}
}

func TestValidateURL_NotListing(t *testing.T) {
	cases := []string{
		"https://www.etsy.com/shop/SomeShop",
		"https://www.etsy.com/search?q=mug",
		"https://www.etsy.com/",
		"https://www.etsy.com/c/home-and-living",
		"https://www.etsy.com/cart",
	}
	for _, c := range cases {
		if err := ValidateURL(c); !errors.Is(err, ErrNotListing) {
			t.Errorf("ValidateURL(%q) = %v; want ErrNotListing", c, err)
		}
	}
}

// Wrong domain wins over a listing-looking path: domain is checked first.
func TestValidateURL_WrongDomainWithListingPath(t *testing.T) {
	err := ValidateURL("https://www.ebay.com/listing/123")
	if !errors.Is(err, ErrNotEtsy) {
		t.Fatalf("ValidateURL = %v; want ErrNotEtsy", err)
	}
}
