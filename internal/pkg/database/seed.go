package database

import (
	"log"

	"github.com/akshara-fonts/akshara/app/models"
	"github.com/akshara-fonts/akshara/app/repository"
)

// SeedCatalog loads the launch catalog and demo accounts when the store is
// empty. Safe to call on every start.
func SeedCatalog(repos *repository.Repositories) error {
	count, err := repos.Font.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Print("Seeding font catalog and demo users")

	for i := range SeedFonts {
		font := SeedFonts[i]
		if err := font.Validate(); err != nil {
			return err
		}
		if err := repos.Font.Create(&font); err != nil {
			return err
		}
	}
	for i := range SeedPairings {
		pairing := SeedPairings[i]
		if err := repos.FontPairing.Create(&pairing); err != nil {
			return err
		}
	}
	for i := range SeedUsers {
		user := SeedUsers[i]
		if err := repos.User.Create(&user); err != nil {
			return err
		}
	}
	return nil
}

// SeedFonts is the launch catalog.
var SeedFonts = []models.Font{
	{
		ID:          "hind",
		Name:        "Hind Akshara",
		Family:      "'AksharaHindLocal', 'Hind', sans-serif",
		Scripts:     []string{models.SCRIPT_HINDI, models.SCRIPT_MIXED},
		Category:    models.CATEGORY_SANS,
		Weights:     []int{400, 700},
		LicenseType: models.LICENSE_TYPE_OFL,
		Price:       0,
		Description: "A robust Devanagari UI font served locally for maximum performance and reliability.",
		Tone:        []string{"Modern", "Clean", "Professional", "Local"},
	},
	{
		ID:          "rozha",
		Name:        "Rozha Heritage",
		Family:      "'Rozha One', serif",
		Scripts:     []string{models.SCRIPT_HINDI, models.SCRIPT_MIXED},
		Category:    models.CATEGORY_DISPLAY,
		Weights:     []int{400},
		LicenseType: models.LICENSE_TYPE_COMMERCIAL,
		Price:       1499,
		Description: "A high-contrast serif font that celebrates traditional calligraphy with modern flair.",
		Tone:        []string{"Elegant", "Traditional", "Bold"},
	},
	{
		ID:          "poppins",
		Name:        "Poppins Global",
		Family:      "'Poppins', sans-serif",
		Scripts:     []string{models.SCRIPT_ENGLISH, models.SCRIPT_HINDI, models.SCRIPT_MIXED},
		Category:    models.CATEGORY_SANS,
		Weights:     []int{300, 400, 500, 600, 700},
		LicenseType: models.LICENSE_TYPE_SUBSCRIPTION,
		Price:       999,
		Description: "A versatile geometric sans-serif that supports both Latin and Devanagari seamlessly.",
		Tone:        []string{"Modern", "Friendly", "Geometric"},
	},
	{
		ID:          "rajdhani",
		Name:        "Rajdhani Tech",
		Family:      "'Rajdhani', sans-serif",
		Scripts:     []string{models.SCRIPT_HINDI, models.SCRIPT_ENGLISH},
		Category:    models.CATEGORY_UI,
		Weights:     []int{300, 400, 500, 600, 700},
		LicenseType: models.LICENSE_TYPE_OFL,
		Price:       0,
		Description: "Square-ish terminals and a condensed feel perfect for dashboard and tech UIs.",
		Tone:        []string{"Industrial", "Compressed", "Technical"},
	},
	{
		ID:          "kalam",
		Name:        "Kalam Script",
		Family:      "'Kalam', cursive",
		Scripts:     []string{models.SCRIPT_HINDI, models.SCRIPT_ENGLISH},
		Category:    models.CATEGORY_DISPLAY,
		Weights:     []int{300, 400, 700},
		LicenseType: models.LICENSE_TYPE_OFL,
		Price:       0,
		Description: "A handwriting style font that captures the organic feel of ink on paper.",
		Tone:        []string{"Casual", "Organic", "Friendly"},
	},
	{
		ID:          "lora",
		Name:        "Lora Serene",
		Family:      "'Lora', serif",
		Scripts:     []string{models.SCRIPT_ENGLISH},
		Category:    models.CATEGORY_SERIF,
		Weights:     []int{400, 700},
		LicenseType: models.LICENSE_TYPE_OFL,
		Price:       0,
		Description: "A contemporary serif with roots in calligraphy, great for long-form reading.",
		Tone:        []string{"Literary", "Serene", "Classic"},
	},
}

// SeedPairings are the curated headline/body combinations.
var SeedPairings = []models.FontPairing{
	{
		ID:             "p1",
		HeadlineFontID: "rozha",
		BodyFontID:     "hind",
		Description:    "Elegant high-contrast display for headlines paired with hyper-readable local UI sans for body text.",
		Tags:           []string{"Editorial", "Luxury", "Bilingual Blog"},
	},
	{
		ID:             "p2",
		HeadlineFontID: "rajdhani",
		BodyFontID:     "poppins",
		Description:    "Modern technical look with a compressed header and a friendly, geometric body font.",
		Tags:           []string{"SaaS", "Modern", "Dashboard"},
	},
	{
		ID:             "p3",
		HeadlineFontID: "lora",
		BodyFontID:     "hind",
		Description:    "Classic English serif paired with a sturdy local Devanagari sans-serif for academic or literary content.",
		Tags:           []string{"Scholarly", "Classic", "Traditional"},
	},
}

// SeedUsers are demo accounts for local development and the hosted sandbox.
var SeedUsers = []models.User{
	{ID: "u-1001", Email: "asha@example.com", Name: "Asha Verma"},
	{ID: "u-1002", Email: "rahul@example.com", Name: "Rahul Mehta"},
	{ID: "u-1003", Email: "studio@example.com", Name: "Studio Devanagari"},
}
