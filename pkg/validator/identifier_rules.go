package validator

const (
	cpfLength  = 11
	cnpjLength = 14
)

// CPF reports whether value is a valid 11-digit Brazilian individual taxpayer
// number. Formatting characters are ignored; sequences made of a single
// repeated digit are rejected even though their check digits compute.
func CPF(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != cpfLength || repeatedDigit(digits) {
		return false
	}

	first := cpfCheckDigit(digits[:9], 10)
	if first != digits[9] {
		return false
	}
	second := cpfCheckDigit(digits[:10], 11)
	return second == digits[10]
}

// cpfCheckDigit weights digits from weight down to 2. Remainders of 10 and 11
// collapse to 0.
func cpfCheckDigit(digits []int, weight int) int {
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		return 0
	}
	return rest
}

// CNPJ reports whether value is a valid 14-digit Brazilian company registry
// number.
func CNPJ(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != cnpjLength || repeatedDigit(digits) {
		return false
	}

	body := cnpjLength - 2
	if cnpjCheckDigit(digits[:body]) != digits[body] {
		return false
	}
	return cnpjCheckDigit(digits[:body+1]) == digits[body+1]
}

// cnpjCheckDigit sums digits left to right with weights cycling 9..2 so that
// the rightmost digit always carries weight 2.
func cnpjCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) - 7
	for _, d := range digits {
		sum += d * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

func onlyDigits(value string) []int {
	out := make([]int, 0, len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

func repeatedDigit(digits []int) bool {
	if len(digits) == 0 {
		return false
	}
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
