package faker

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

var skuPrefixes = []string{"SKU", "PRD", "ART", "ITM", ""}

var slugReplacer = strings.NewReplacer(
	" ", "-",
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
)

// NewID returns a fresh UUID in canonical textual form.
func NewID() string {
	return uuid.NewString()
}

// Slugify lowercases a display name, turns spaces into hyphens and maps
// accented Spanish characters to plain ASCII. Applying it twice gives
// the same result as applying it once.
func Slugify(name string) string {
	return slugReplacer.Replace(strings.ToLower(name))
}

// RandomSKU builds a SKU from one of the known prefixes (possibly empty)
// plus a zero-padded number of 4 to 8 digits.
func RandomSKU(rng *rand.Rand) string {
	prefix := skuPrefixes[rng.Intn(len(skuPrefixes))]
	return prefix + randomDigits(rng, 4+rng.Intn(5))
}

// RandomEAN13 returns a 13-digit EAN with a valid check digit.
func RandomEAN13(rng *rand.Rand) string {
	return withCheckDigit(randomDigits(rng, 12), 1, 3)
}

// RandomUPC12 returns a 12-digit UPC-A with a valid check digit.
func RandomUPC12(rng *rand.Rand) string {
	return withCheckDigit(randomDigits(rng, 11), 3, 1)
}

// withCheckDigit appends the modulo-10 check digit computed with the two
// alternating weights applied left to right.
func withCheckDigit(digits string, oddWeight, evenWeight int) string {
	sum := 0
	for i, c := range digits {
		d := int(c - '0')
		if i%2 == 0 {
			sum += d * oddWeight
		} else {
			sum += d * evenWeight
		}
	}
	check := (10 - sum%10) % 10
	return fmt.Sprintf("%s%d", digits, check)
}

func randomDigits(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

// Now renders the current time as an ISO-style datetime string.
func Now() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// RandomDate returns today plus a uniform day offset in the inclusive
// range [minDays, maxDays], rendered as YYYY-MM-DD.
func RandomDate(rng *rand.Rand, minDays, maxDays int) string {
	offset := minDays + rng.Intn(maxDays-minDays+1)
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

// RandomDateTime is RandomDate with a uniform time of day attached.
func RandomDateTime(rng *rand.Rand, minDays, maxDays int) string {
	return fmt.Sprintf("%s %02d:%02d:%02d",
		RandomDate(rng, minDays, maxDays),
		rng.Intn(24), rng.Intn(60), rng.Intn(60))
}
