// Package entity contains the core business objects of the project.
package entity

// DonationType is how often a donation recurs.
type DonationType string

const (
	DonationTypeMonthly DonationType = "monthly"
	DonationTypeOneTime DonationType = "one-time"
)

// String returns the string representation of the DonationType.
func (t DonationType) String() string {
	return string(t)
}

// IsValid checks if the DonationType is a valid value.
func (t DonationType) IsValid() bool {
	switch t {
	case DonationTypeMonthly, DonationTypeOneTime:
		return true
	default:
		return false
	}
}

// Values lists every accepted DonationType tag.
func (DonationType) Values() []string {
	return []string{string(DonationTypeMonthly), string(DonationTypeOneTime)}
}

// DonationCategory selects what a donation is for.
type DonationCategory string

const (
	DonationCategoryGeneral  DonationCategory = "general"
	DonationCategoryDisaster DonationCategory = "disaster"
	DonationCategorySponsor  DonationCategory = "sponsor"
	DonationCategoryItems    DonationCategory = "items"
)

// String returns the string representation of the DonationCategory.
func (c DonationCategory) String() string {
	return string(c)
}

// IsValid checks if the DonationCategory is a valid value.
func (c DonationCategory) IsValid() bool {
	switch c {
	case DonationCategoryGeneral, DonationCategoryDisaster, DonationCategorySponsor, DonationCategoryItems:
		return true
	default:
		return false
	}
}

// Values lists every accepted DonationCategory tag.
func (DonationCategory) Values() []string {
	return []string{
		string(DonationCategoryGeneral),
		string(DonationCategoryDisaster),
		string(DonationCategorySponsor),
		string(DonationCategoryItems),
	}
}

// PaymentMethod is the instrument a donor or sponsor pays with. It is recorded only.
type PaymentMethod string

const (
	PaymentMethodCreditCard  PaymentMethod = "credit_card"
	PaymentMethodDebitCard   PaymentMethod = "debit_card"
	PaymentMethodPayPal      PaymentMethod = "paypal"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPayPal, PaymentMethodMobileMoney:
		return true
	default:
		return false
	}
}

// Values lists every accepted PaymentMethod tag.
func (PaymentMethod) Values() []string {
	return []string{
		string(PaymentMethodCreditCard),
		string(PaymentMethodDebitCard),
		string(PaymentMethodPayPal),
		string(PaymentMethodMobileMoney),
	}
}
