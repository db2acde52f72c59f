package forms

import "strings"

// FormatAadhar renders a twelve-digit Aadhar number as grouped display text,
// "123456789012" → "1234 5678 9012". Partial input is grouped as far as it
// goes; non-digits are stripped first.
func FormatAadhar(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) > AadharLength {
		s = s[:AadharLength]
	}

	var out strings.Builder
	for i, r := range s {
		if i > 0 && i%4 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// NormalizeIFSC uppercases and trims an IFSC code for validation and submit.
func NormalizeIFSC(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizePAN uppercases and trims a PAN number.
func NormalizePAN(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
