package faker

import (
	"fmt"
	"math/rand"
	"strings"
)

// Word pools mixing the es_ES and en_US locales the datasets are meant to
// look like. Kept as plain slices, same approach as any list-backed fake
// text source.

var cities = []string{
	"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza", "Málaga",
	"Murcia", "Bilbao", "Alicante", "Córdoba", "Valladolid", "Granada",
	"Springfield", "Austin", "Portland", "Denver", "Madison", "Franklin",
	"Clinton", "Salem",
}

var streets = []string{
	"Gran Vía", "Calle Mayor", "Avenida de la Constitución",
	"Paseo de Gracia", "Calle Alcalá", "Rambla de Cataluña",
	"Plaza del Sol", "Oak Street", "Maple Avenue", "Main Street",
	"Elm Street", "Park Avenue", "Cedar Lane", "Lake View",
}

var companies = []string{
	"Comercial Ortega", "Distribuciones García", "Grupo Serrano",
	"Industrias Navarro", "Ferretería Ruiz", "Almacenes Vidal",
	"Suministros Castro", "Northwind Traders", "Acme Supplies",
	"Globex Solutions", "Initech Partners", "Redwood Logistics",
}

var adjectives = []string{
	"compact", "premium", "digital", "portable", "ergonomic", "wireless",
	"classic", "modern", "industrial", "deluxe", "smart", "foldable",
	"reinforced", "ultra", "basic", "slim", "heavy", "light", "dual",
	"universal",
}

var nouns = []string{
	"widget", "gadget", "device", "module", "unit", "tool", "case",
	"panel", "board", "cable", "adapter", "holder", "bracket", "kit",
	"set", "pack", "container", "dispenser", "organizer", "stand",
}

var fillerWords = []string{
	"producto", "almacén", "envío", "calidad", "material", "nuevo",
	"general", "interno", "stock", "serie", "modelo", "standard",
	"supply", "batch", "rotation", "shelf", "handling", "priority",
	"seasonal", "bulk",
}

func randomCity(rng *rand.Rand) string {
	return cities[rng.Intn(len(cities))]
}

func randomStreet(rng *rand.Rand) string {
	return streets[rng.Intn(len(streets))]
}

func randomCompany(rng *rand.Rand) string {
	return companies[rng.Intn(len(companies))]
}

func randomAdjective(rng *rand.Rand) string {
	return adjectives[rng.Intn(len(adjectives))]
}

func randomNoun(rng *rand.Rand) string {
	return nouns[rng.Intn(len(nouns))]
}

func randomLetter(rng *rand.Rand) string {
	return string(rune('A' + rng.Intn(26)))
}

// randomSentence assembles a short filler sentence from the word pools.
func randomSentence(rng *rand.Rand) string {
	n := 6 + rng.Intn(5)
	words := make([]string, n)
	for i := range words {
		words[i] = fillerWords[rng.Intn(len(fillerWords))]
	}
	return capitalize(strings.Join(words, " ")) + "."
}

// randomParagraph joins a few sentences, for item descriptions.
func randomParagraph(rng *rand.Rand, sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = randomSentence(rng)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func unitCode(rng *rand.Rand) string {
	return fmt.Sprintf("%s%d", randomLetter(rng), 1+rng.Intn(99))
}
