package validate

import "strings"

// IsCPF checks the two mod-11 verification digits of a Brazilian CPF.
// Accepts bare digits or the formatted 000.000.000-00 form.
func IsCPF(s string) bool {
	cpf := strings.NewReplacer(".", "", "-", "").Replace(s)
	if len(cpf) != 11 {
		return false
	}

	allEqual := true
	for i := 0; i < len(cpf); i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return false
		}
		if cpf[i] != cpf[0] {
			allEqual = false
		}
	}
	// Sequences like 000.000.000-00 satisfy the checksum but are not issued.
	if allEqual {
		return false
	}

	if digit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	return digit(cpf, 10) == int(cpf[10]-'0')
}

func digit(cpf string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(cpf[i]-'0') * (pos + 1 - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}
