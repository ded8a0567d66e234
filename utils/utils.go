package utils

import (
	"strconv"
	"strings"
)

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// EnsureChrPrefix coerces a chromosome name to carry the UCSC-style
// 'chr' prefix ("1" -> "chr1", "chrX" stays "chrX").
func EnsureChrPrefix(chrom string) string {
	if strings.HasPrefix(chrom, "chr") {
		return chrom
	}
	return "chr" + chrom
}

// StripChrPrefix removes a leading 'chr' (any casing), the naming
// convention the NCBI services expect.
func StripChrPrefix(chrom string) string {
	if len(chrom) >= 3 && strings.EqualFold(chrom[:3], "chr") {
		return chrom[3:]
	}
	return chrom
}

// TitleCaseWords uppercases each word's first letter and lowercases the
// remainder ("single nucleotide variant" -> "Single Nucleotide Variant").
func TitleCaseWords(text string) string {
	words := strings.Split(text, " ")
	for i, word := range words {
		if len(word) == 0 {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// FormatThousands renders an integer with comma digit grouping,
// the locale formatting the viewer shows for genomic positions.
func FormatThousands(number int) string {
	digits := strconv.Itoa(number)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var grouped strings.Builder
	leading := len(digits) % 3
	if leading > 0 {
		grouped.WriteString(digits[:leading])
	}
	for i := leading; i < len(digits); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteString(",")
		}
		grouped.WriteString(digits[i : i+3])
	}

	return sign + grouped.String()
}
