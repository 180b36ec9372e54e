package faker

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewIDIsUniqueAndCanonical(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Categorías":     "categorias",
		"Tamaños":        "tamanos",
		"Electrónica":    "electronica",
		"Black & Decker": "black-&-decker",
		"Under Armour":   "under-armour",
		"XS":             "xs",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in))
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	inputs := []string{"Categorías", "Centro Distribución Málaga", "Coca-Cola", "Único", "P&G"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestRandomSKUShape(t *testing.T) {
	rng := testRNG()
	pattern := regexp.MustCompile(`^(SKU|PRD|ART|ITM)?[0-9]{4,8}$`)
	for i := 0; i < 200; i++ {
		sku := RandomSKU(rng)
		assert.Regexp(t, pattern, sku)
	}
}

func TestRandomEAN13Checksum(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 100; i++ {
		ean := RandomEAN13(rng)
		require.Len(t, ean, 13)
		sum := 0
		for j, c := range ean {
			require.True(t, c >= '0' && c <= '9')
			d := int(c - '0')
			if j%2 == 0 {
				sum += d
			} else {
				sum += d * 3
			}
		}
		assert.Zero(t, sum%10, "invalid EAN-13 checksum in %s", ean)
	}
}

func TestRandomUPC12Checksum(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 100; i++ {
		upc := RandomUPC12(rng)
		require.Len(t, upc, 12)
		sum := 0
		for j, c := range upc {
			require.True(t, c >= '0' && c <= '9')
			d := int(c - '0')
			if j%2 == 0 {
				sum += d * 3
			} else {
				sum += d
			}
		}
		assert.Zero(t, sum%10, "invalid UPC-A checksum in %s", upc)
	}
}

func TestNowFormat(t *testing.T) {
	_, err := time.Parse("2006-01-02 15:04:05", Now())
	require.NoError(t, err)
}

func TestRandomDateStaysInRange(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 100; i++ {
		s := RandomDate(rng, 30, 730)
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)

		// One day of slack on each side to keep the test clock-safe.
		low := time.Now().AddDate(0, 0, 29)
		high := time.Now().AddDate(0, 0, 731)
		assert.True(t, d.After(low) && d.Before(high), "date %s outside [+30d, +730d]", s)
	}
}

func TestRandomDateTimeFormat(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 50; i++ {
		s := RandomDateTime(rng, -365, 0)
		_, err := time.Parse("2006-01-02 15:04:05", s)
		require.NoError(t, err)
	}
}
