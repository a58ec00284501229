package payment

import (
	"regexp"
	"strings"

	"studiobook/internal/domain"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3}$`)
)

// ValidateCard checks the submitted card details: 16 digits after stripping
// spaces, MM/YY expiry, 3-digit CVV and a non-blank holder name. No Luhn check
// and no expiry freshness check are performed, matching the simulated gateway.
func ValidateCard(card domain.PaymentCard) bool {
	number := strings.ReplaceAll(card.CardNumber, " ", "")
	return cardNumberRe.MatchString(number) &&
		expiryRe.MatchString(card.ExpiryDate) &&
		cvvRe.MatchString(card.CVV) &&
		strings.TrimSpace(card.CardHolder) != ""
}
