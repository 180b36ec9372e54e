package faker

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vessel-labs/vesselfake/internal/record"
)

var locationTypes = []string{"warehouse", "store", "distribution_center", "office"}

// Weighted: active 3/5, draft and archived 1/5 each.
var itemStatuses = []string{"active", "active", "active", "draft", "archived"}

var movementTypes = []string{"in", "out", "transfer", "adjustment"}

var storageUnitKinds = []string{"Estante", "Rack", "Cajón", "Zona", "Pasillo", "Bin"}

var productCategories = []string{
	"Electrónica", "Computación", "Hogar", "Cocina", "Jardín",
	"Deportes", "Ropa", "Calzado", "Juguetes", "Libros",
	"Oficina", "Papelería", "Herramientas", "Automotriz", "Mascotas",
	"Salud", "Belleza", "Alimentos", "Bebidas", "Limpieza",
}

var brands = []string{
	"Samsung", "Apple", "Sony", "LG", "HP", "Dell", "Lenovo", "Asus",
	"Nike", "Adidas", "Puma", "Reebok", "Under Armour",
	"Bosch", "Makita", "DeWalt", "Stanley", "Black & Decker",
	"Nestlé", "Coca-Cola", "PepsiCo", "Unilever", "P&G",
	"Generic", "OEM", "NoName", "Import", "Local",
}

var colors = []string{
	"Rojo", "Azul", "Verde", "Negro", "Blanco", "Gris", "Amarillo",
	"Naranja", "Rosa", "Morado",
}

var sizes = []string{
	"XS", "S", "M", "L", "XL", "XXL", "Único",
	"32", "34", "36", "38", "40", "42",
}

// vocabFixtures is the fixed six-vocabulary catalog created once per run.
var vocabFixtures = []struct {
	name, slug, description string
}{
	{"Categorías", "categories", "Categorías de productos"},
	{"Marcas", "brands", "Marcas de productos"},
	{"Proveedores", "suppliers", "Proveedores"},
	{"Tags", "tags", "Etiquetas"},
	{"Colores", "colors", "Colores"},
	{"Tamaños", "sizes", "Tamaños"},
}

// Faker generates the fake catalog/inventory entity set for one
// workspace. It keeps the ids produced by earlier calls so later calls
// can reference them; one Faker covers exactly one generation run.
type Faker struct {
	WorkspaceID string

	rng          *rand.Rand
	vocabularies map[string]string   // vocabulary slug -> id
	terms        map[string][]string // vocabulary slug -> term ids
	locations    []string
	items        []string
}

// New creates a generation session. An empty workspaceID gets a fresh
// one; a nil rng falls back to a time-seeded source.
func New(workspaceID string, rng *rand.Rand) *Faker {
	if workspaceID == "" {
		workspaceID = NewID()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Faker{
		WorkspaceID:  workspaceID,
		rng:          rng,
		vocabularies: make(map[string]string),
		terms:        make(map[string][]string),
	}
}

// SetLocations replaces the known location ids, for runs that reuse
// locations already present in the database instead of generating them.
func (f *Faker) SetLocations(ids []string) {
	f.locations = ids
}

// LocationCount reports how many location ids the session knows about.
func (f *Faker) LocationCount() int {
	return len(f.locations)
}

// GenerateVocabularies creates the six standard vocabularies.
func (f *Faker) GenerateVocabularies() []*record.Record {
	result := make([]*record.Record, 0, len(vocabFixtures))
	for _, v := range vocabFixtures {
		id := NewID()
		f.vocabularies[v.slug] = id
		result = append(result, record.New().
			Set("id", id).
			Set("name", v.name).
			Set("slug", v.slug).
			Set("description", v.description).
			Set("workspace_id", f.WorkspaceID).
			Set("created_at", Now()).
			Set("updated_at", Now()))
	}
	return result
}

// GenerateTerms populates the categories, brands, colors and sizes
// vocabularies. Suppliers and tags intentionally stay empty.
func (f *Faker) GenerateTerms(countPerVocab int) []*record.Record {
	result := make([]*record.Record, 0)
	result = append(result, f.termsFor("categories", "Categoría", capped(productCategories, countPerVocab))...)
	result = append(result, f.termsFor("brands", "Marca", capped(brands, countPerVocab))...)
	result = append(result, f.termsFor("colors", "Color", colors)...)
	result = append(result, f.termsFor("sizes", "Tamaño", sizes)...)
	return result
}

func (f *Faker) termsFor(vocabSlug, label string, names []string) []*record.Record {
	result := make([]*record.Record, 0, len(names))
	for _, name := range names {
		id := NewID()
		f.terms[vocabSlug] = append(f.terms[vocabSlug], id)
		result = append(result, record.New().
			Set("id", id).
			Set("name", name).
			Set("slug", Slugify(name)).
			Set("description", fmt.Sprintf("%s: %s", label, name)).
			Set("vocabulary_id", f.vocabularies[vocabSlug]).
			Set("workspace_id", f.WorkspaceID).
			Set("created_at", Now()).
			Set("updated_at", Now()))
	}
	return result
}

func capped(names []string, max int) []string {
	if max < len(names) {
		return names[:max]
	}
	return names
}

// GenerateLocations builds the two-level location tree: count top-level
// locations, then 2..unitsPerWarehouse storage units inside every
// warehouse. Storage units never get children of their own.
func (f *Faker) GenerateLocations(count, unitsPerWarehouse int) []*record.Record {
	result := make([]*record.Record, 0, count)

	for i := 0; i < count; i++ {
		locType := locationTypes[f.rng.Intn(len(locationTypes))]
		id := NewID()

		var name string
		switch locType {
		case "warehouse":
			name = "Bodega " + randomCity(f.rng)
		case "store":
			name = "Tienda " + randomStreet(f.rng)
		case "distribution_center":
			name = "Centro Distribución " + randomCity(f.rng)
		default:
			name = "Oficina " + randomCompany(f.rng)
		}

		result = append(result, record.New().
			Set("id", id).
			Set("name", name).
			Set("description", randomSentence(f.rng)).
			Set("type", locType).
			Set("address_id", nil).
			Set("parent_id", nil).
			Set("workspace_id", f.WorkspaceID).
			Set("created_at", Now()).
			Set("updated_at", Now()))
		f.locations = append(f.locations, id)
	}

	for _, loc := range result[:count] {
		if loc.Value("type") != "warehouse" {
			continue
		}
		units := 2
		if unitsPerWarehouse > 2 {
			units = 2 + f.rng.Intn(unitsPerWarehouse-1)
		}
		for j := 0; j < units; j++ {
			unitID := NewID()
			kind := storageUnitKinds[f.rng.Intn(len(storageUnitKinds))]
			result = append(result, record.New().
				Set("id", unitID).
				Set("name", fmt.Sprintf("%s %s", kind, unitCode(f.rng))).
				Set("description", fmt.Sprintf("%s en %s", kind, loc.Value("name"))).
				Set("type", "storage_unit").
				Set("address_id", nil).
				Set("parent_id", loc.Value("id")).
				Set("workspace_id", f.WorkspaceID).
				Set("created_at", Now()).
				Set("updated_at", Now()))
			f.locations = append(f.locations, unitID)
		}
	}

	return result
}

// GenerateItems creates catalog items with weighted status and optional
// description/notes. Names are truncated to 255 characters.
func (f *Faker) GenerateItems(count int) []*record.Record {
	result := make([]*record.Record, 0, count)

	for i := 0; i < count; i++ {
		id := NewID()
		category := productCategories[f.rng.Intn(len(productCategories))]
		name := fmt.Sprintf("%s %s - %s",
			capitalize(randomAdjective(f.rng)),
			capitalize(randomNoun(f.rng)),
			category)
		if utf8.RuneCountInString(name) > 255 {
			name = string([]rune(name)[:255])
		}

		var description interface{}
		if f.rng.Float64() > 0.3 {
			description = randomParagraph(f.rng, 3)
		}
		var notes interface{}
		if f.rng.Float64() > 0.7 {
			notes = randomSentence(f.rng)
		}

		result = append(result, record.New().
			Set("id", id).
			Set("name", name).
			Set("description", description).
			Set("uom_id", nil).
			Set("notes", notes).
			Set("status", itemStatuses[f.rng.Intn(len(itemStatuses))]).
			Set("workspace_id", f.WorkspaceID).
			Set("created_at", Now()).
			Set("updated_at", Now()))
		f.items = append(f.items, id)
	}

	return result
}

// GenerateItemIdentifiers attaches identifiers to every item: always one
// primary SKU, an EAN with probability 0.7 and a supplier code with
// probability 0.4, each trial independent.
func (f *Faker) GenerateItemIdentifiers(items []*record.Record) []*record.Record {
	result := make([]*record.Record, 0, len(items))

	for _, item := range items {
		itemID := item.Value("id")

		result = append(result, f.identifier(itemID, "sku", RandomSKU(f.rng), 1))

		if f.rng.Float64() > 0.3 {
			result = append(result, f.identifier(itemID, "ean", RandomEAN13(f.rng), 0))
		}
		if f.rng.Float64() > 0.6 {
			result = append(result, f.identifier(itemID, "supplier_code", "SUP-"+randomDigits(f.rng, 6), 0))
		}
	}

	return result
}

func (f *Faker) identifier(itemID interface{}, idType, value string, primary int) *record.Record {
	return record.New().
		Set("id", NewID()).
		Set("item_id", itemID).
		Set("variant_id", nil).
		Set("type", idType).
		Set("value", value).
		Set("is_primary", primary).
		Set("created_at", Now()).
		Set("updated_at", Now())
}

// GenerateItemTerms links every item to 1-2 category terms (sampled
// without replacement) and, with probability 0.8, one brand term.
func (f *Faker) GenerateItemTerms(items []*record.Record) []*record.Record {
	result := make([]*record.Record, 0, len(items))
	categories := f.terms["categories"]
	brandTerms := f.terms["brands"]

	for _, item := range items {
		itemID := item.Value("id")

		if len(categories) > 0 {
			n := 1 + f.rng.Intn(2)
			if n > len(categories) {
				n = len(categories)
			}
			for _, idx := range f.rng.Perm(len(categories))[:n] {
				result = append(result, record.New().
					Set("item_id", itemID).
					Set("term_id", categories[idx]).
					Set("created_at", Now()).
					Set("updated_at", Now()))
			}
		}

		if len(brandTerms) > 0 && f.rng.Float64() > 0.2 {
			result = append(result, record.New().
				Set("item_id", itemID).
				Set("term_id", brandTerms[f.rng.Intn(len(brandTerms))]).
				Set("created_at", Now()).
				Set("updated_at", Now()))
		}
	}

	return result
}

// GenerateStockItems creates quantity-on-hand rows, keeping the
// (sku, location) pair unique within the run. Each row gets up to 100
// sampling attempts; when they run out the row is silently skipped, so
// the result can hold fewer than count rows.
func (f *Faker) GenerateStockItems(count int) ([]*record.Record, error) {
	if count <= 0 {
		return []*record.Record{}, nil
	}
	if len(f.items) == 0 || len(f.locations) == 0 {
		return nil, fmt.Errorf("items and locations must be generated before stock items")
	}

	result := make([]*record.Record, 0, count)
	used := make(map[string]struct{})

	for i := 0; i < count; i++ {
		var itemID, locationID, sku string
		found := false
		for attempts := 0; attempts < 100; attempts++ {
			itemID = f.items[f.rng.Intn(len(f.items))]
			locationID = f.locations[f.rng.Intn(len(f.locations))]
			sku = RandomSKU(f.rng)
			key := sku + "\x00" + locationID
			if _, taken := used[key]; !taken {
				used[key] = struct{}{}
				found = true
				break
			}
		}
		if !found {
			continue
		}

		quantity := f.rng.Intn(1001)
		reserved := 0
		if quantity > 0 {
			max := quantity
			if max > 100 {
				max = 100
			}
			reserved = f.rng.Intn(max + 1)
		}

		var lotNumber interface{}
		if f.rng.Float64() > 0.5 {
			lotNumber = "LOT-" + randomDigits(f.rng, 6)
		}
		var expiration interface{}
		if f.rng.Float64() > 0.7 {
			expiration = RandomDate(f.rng, 30, 730)
		}

		result = append(result, record.New().
			Set("id", NewID()).
			Set("sku", sku).
			Set("catalog_item_id", itemID).
			Set("catalog_origin", "internal").
			Set("location_id", locationID).
			Set("location_type", "warehouse").
			Set("quantity", quantity).
			Set("reserved_quantity", reserved).
			Set("lot_number", lotNumber).
			Set("expiration_date", expiration).
			Set("serial_number", nil).
			Set("workspace_id", f.WorkspaceID).
			Set("meta", nil).
			Set("created_at", Now()).
			Set("updated_at", Now()))
	}

	return result, nil
}

// GenerateStockMovements creates historical movement rows. Out and
// transfer movements get a from-location, in and transfer movements get
// a to-location, adjustments get neither.
func (f *Faker) GenerateStockMovements(count int) ([]*record.Record, error) {
	if count <= 0 {
		return []*record.Record{}, nil
	}
	if len(f.locations) == 0 {
		return nil, fmt.Errorf("locations must be generated or loaded before stock movements")
	}

	result := make([]*record.Record, 0, count)

	for i := 0; i < count; i++ {
		movementType := movementTypes[f.rng.Intn(len(movementTypes))]

		var fromID, fromType, toID, toType interface{}
		if movementType == "out" || movementType == "transfer" {
			fromID = f.locations[f.rng.Intn(len(f.locations))]
			fromType = "warehouse"
		}
		if movementType == "in" || movementType == "transfer" {
			toID = f.locations[f.rng.Intn(len(f.locations))]
			toType = "warehouse"
		}

		var groupID interface{}
		if f.rng.Float64() > 0.5 {
			groupID = NewID()
		}
		var reference interface{}
		if f.rng.Float64() > 0.4 {
			reference = "REF-" + randomDigits(f.rng, 8)
		}
		var userID interface{}
		if f.rng.Float64() > 0.3 {
			userID = NewID()
		}

		result = append(result, record.New().
			Set("id", NewID()).
			Set("movement_id", groupID).
			Set("sku", RandomSKU(f.rng)).
			Set("location_from_id", fromID).
			Set("location_from_type", fromType).
			Set("location_to_id", toID).
			Set("location_to_type", toType).
			Set("quantity", 1+f.rng.Intn(500)).
			Set("balance_after", f.rng.Intn(2001)).
			Set("movement_type", movementType).
			Set("reference", reference).
			Set("user_id", userID).
			Set("workspace_id", f.WorkspaceID).
			Set("meta", nil).
			Set("created_at", RandomDateTime(f.rng, -365, 0)).
			Set("processed_at", RandomDateTime(f.rng, -365, 0)))
	}

	return result, nil
}
