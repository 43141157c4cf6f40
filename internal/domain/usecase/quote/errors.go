package quote

import "errors"

var errNonPositiveQuote = errors.New("partner returned a non-positive amount")
