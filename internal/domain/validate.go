package domain

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// phoneRegexp accepts digits, plus, hyphen, whitespace and parentheses only.
var phoneRegexp = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// ValidateSubmission checks raw donor input and, on success, returns a
// submission draft with defaults applied (status pending, payment method
// manual). It performs no I/O; insertion is the store's job.
func ValidateSubmission(in SubmissionInput) (*Submission, error) {
	required := []struct {
		name  string
		value string
	}{
		{"name", in.DonorName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"amount", in.Amount},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: field %s is required", ErrValidation, f.name)
		}
	}

	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: please enter a valid email address", ErrValidation)
	}

	phone := strings.TrimSpace(in.Phone)
	if !phoneRegexp.MatchString(phone) {
		return nil, fmt.Errorf("%w: please enter a valid phone number", ErrValidation)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil || !amount.IsPositive() {
		return nil, fmt.Errorf("%w: please enter a valid donation amount", ErrValidation)
	}

	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = "manual"
	}

	return &Submission{
		CampaignID:    in.CampaignID,
		DonorName:     strings.TrimSpace(in.DonorName),
		Email:         email,
		Phone:         phone,
		Amount:        amount,
		PaymentMethod: method,
		Status:        StatusPending,
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}
