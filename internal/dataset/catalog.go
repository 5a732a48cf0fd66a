package dataset

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/enums"
	"github.com/forgelabs/seedforge/pkg/random"
)

type categoryName struct {
	slug string
	en   string
	zh   string
	es   string
}

var categoryNames = []categoryName{
	{"electronics", "Electronics", "电子产品", "Electrónica"},
	{"fashion", "Fashion", "时尚服饰", "Moda"},
	{"books", "Books", "图书", "Libros"},
	{"home-decor", "Home Decor", "家居装饰", "Decoración"},
	{"sports", "Sports", "运动户外", "Deportes"},
	{"beauty", "Beauty", "美妆护肤", "Belleza"},
	{"grocery", "Grocery", "生鲜食品", "Alimentos"},
	{"toys", "Toys", "玩具乐器", "Juguetes"},
	{"travel", "Travel", "旅行用品", "Viajes"},
	{"digital", "Digital", "数码设备", "Digitales"},
}

// GenerateCategories produces the two-level category tree: the first
// RootCategory ids are roots with no parent, every later id references a
// random root.
func GenerateCategories(cfg config.DatasetConfig, rng *random.Source) []models.Category {
	base := dayStart(2022, time.May, 1, 9, 0)

	categories := make([]models.Category, 0, cfg.Categories)
	for cid := 1; cid <= cfg.Categories; cid++ {
		name := random.Pick(rng, categoryNames)
		var parent *int
		if cid > cfg.RootCategory {
			p := rng.IntRange(1, cfg.RootCategory)
			parent = &p
		}
		categories = append(categories, models.Category{
			ID:            cid,
			ParentID:      parent,
			Slug:          fmt.Sprintf("%s-%d", name.slug, cid),
			DisplayNameEN: fmt.Sprintf("%s %d", name.en, cid),
			DisplayNameZH: fmt.Sprintf("%s %d", name.zh, cid),
			DisplayNameES: fmt.Sprintf("%s %d", name.es, cid),
			Description:   fmt.Sprintf("%s category %d description", name.en, cid),
			CreatedAt:     base.Add(time.Duration(cid) * time.Minute),
		})
	}
	return categories
}

// GenerateProducts produces the product table. Price follows the fixed
// ramp round(10 + (id*2.37) mod 500, 2); cost is a uniform 40-80% fraction
// of price. Every eleventh product rolls the DISCONTINUED selector.
func GenerateProducts(cfg config.DatasetConfig, rng *random.Source, categories []models.Category) []models.Product {
	statuses := enums.ProductStatuses()
	base := dayStart(2022, time.June, 1, 10, 0)

	products := make([]models.Product, 0, cfg.Products)
	for pid := 1; pid <= cfg.Products; pid++ {
		category := random.Pick(rng, categories)
		price := decimal.NewFromFloat(10 + math.Mod(float64(pid)*2.37, 500)).Round(2)
		costFraction := rng.Float64Range(0.4, 0.8)
		status := enums.ProductStatusActive
		if pid%11 == 0 {
			status = statuses[pid%len(statuses)]
		}
		products = append(products, models.Product{
			ID:         pid,
			CategoryID: category.ID,
			SKU:        fmt.Sprintf("SKU%05d", pid),
			Price:      price,
			Cost:       price.Mul(decimal.NewFromFloat(costFraction)).Round(2),
			Currency:   random.Pick(rng, enums.Currencies()),
			Status:     status,
			CreatedAt:  base.AddDate(0, 0, pid),
		})
	}
	return products
}

var translationAdjectives = map[enums.Locale][]string{
	enums.LocaleEnUS: {"Premium", "Eco", "Smart", "Limited", "Classic", "Ultra"},
	enums.LocaleZhCN: {"旗舰版", "环保款", "智能版", "限量版", "经典款", "升级版"},
	enums.LocaleEsES: {"Premium", "Eco", "Inteligente", "Edición limitada", "Clásico", "Ultra"},
}

var translationNouns = map[enums.Locale][]string{
	enums.LocaleEnUS: {"Device", "Bundle", "Kit", "Solution", "Accessory", "Package"},
	enums.LocaleZhCN: {"设备", "套装", "组合", "方案", "配件", "礼包"},
	enums.LocaleEsES: {"Dispositivo", "Paquete", "Kit", "Solución", "Accesorio", "Combo"},
}

var translationDescriptions = map[enums.Locale]string{
	enums.LocaleEnUS: "Inclusive design supporting multi-language experience.",
	enums.LocaleZhCN: "支持多语言体验的通用化设计。",
	enums.LocaleEsES: "Diseño inclusivo con soporte multilingüe.",
}

// GenerateTranslations emits exactly one row per product per translation
// locale. The noun is pinned by product id; only the adjective is drawn.
func GenerateTranslations(rng *random.Source, products []models.Product) []models.ProductTranslation {
	locales := enums.TranslationLocales()

	translations := make([]models.ProductTranslation, 0, len(products)*len(locales))
	for _, product := range products {
		for _, locale := range locales {
			nouns := translationNouns[locale]
			translations = append(translations, models.ProductTranslation{
				ProductID:   product.ID,
				Locale:      locale,
				Name:        random.Pick(rng, translationAdjectives[locale]) + " " + nouns[product.ID%len(nouns)],
				Description: translationDescriptions[locale],
			})
		}
	}
	return translations
}
