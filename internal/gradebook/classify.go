package gradebook

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/quangdm/cloudscore/internal/models"
)

var foldDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// đ is a standalone letter, not a combining mark, so NFD stripping alone
// leaves it untouched.
var foldVietnamese = strings.NewReplacer("đ", "d", "Đ", "d")

// NormalizeForCompare strips diacritics, lowercases and trims, so "Điểm Cộng"
// and "diem cong" compare equal.
func NormalizeForCompare(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(foldVietnamese.Replace(folded)))
}

// IsBonusColumn reports whether the column name marks a bonus-point column,
// which is always treated as free text.
func IsBonusColumn(name string) bool {
	return strings.Contains(NormalizeForCompare(name), "diem cong")
}

// IsTextColumn classifies a column as free text, from its name or from the
// values currently under it. Derived on every call: a single student edit can
// flip the classification, so callers must not cache the result.
func IsTextColumn(rec *models.GradeRecord, column string) bool {
	if IsBonusColumn(column) {
		return true
	}
	if rec == nil {
		return false
	}
	for _, st := range rec.Students {
		v := strings.TrimSpace(st.Scores[column])
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err != nil {
			return true
		}
		if strings.IndexFunc(v, isASCIILetter) >= 0 {
			return true
		}
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
