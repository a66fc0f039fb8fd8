package board

import "github.com/ppiankov/contextboard/internal/model"

// globalSymbol is used when a concept type has no symbol table at all
const globalSymbol = "❓"

// defaultColor is used when a concept type has no palette entry
const defaultColor = "#BDBDBD"

// Essentials are the always-offered communication cards, in board order
var Essentials = []string{"I want", "Please", "Thank you", "Yes", "No", "Help"}

// textTemplates maps type and value to a card's display text
var textTemplates = map[model.ConceptType]map[string]string{
	model.ConceptAction: {
		"buy":  "Buy",
		"pay":  "Pay",
		"take": "Take",
		"get":  "Get",
		"wait": "Wait",
	},
	model.ConceptPayment: {
		"pay_for_one":  "Pay for 1",
		"pay_for_two":  "Pay for 2",
		"coupon":       "Coupon",
		"loyalty_card": "Loyalty card",
		"cash":         "Cash",
		"card":         "Card",
	},
	model.ConceptBenefit: {
		"second_item_free":       "2nd one free",
		"second_item_half_price": "2nd one half price",
		"third_item_free":        "3rd one free",
		"half_price":             "Half price",
		"discount":               "Discount",
		"free":                   "Free",
		"free_gift":              "Free gift",
		"free_shipping":          "Free shipping",
	},
	model.ConceptItem: {
		"counter": "Counter",
		"ticket":  "Ticket",
	},
	model.ConceptModifier: {
		"20_percent_off": "20% off",
		"clearance":      "Clearance",
		"members_only":   "Members only",
		"limited_time":   "Limited time",
	},
}

// symbolTable holds a per-type default ("") and per-value emoji
var symbolTable = map[model.ConceptType]map[string]string{
	model.ConceptAction: {
		"":     "👉",
		"buy":  "🛒",
		"pay":  "💳",
		"take": "✋",
		"get":  "🤲",
		"wait": "⏳",
	},
	model.ConceptQuantity: {
		"": "🔢",
	},
	model.ConceptPayment: {
		"":             "💰",
		"pay_for_one":  "1️⃣",
		"pay_for_two":  "2️⃣",
		"coupon":       "🎟️",
		"loyalty_card": "🪪",
		"cash":         "💵",
		"card":         "💳",
	},
	model.ConceptBenefit: {
		"":                       "⭐",
		"second_item_free":       "🎁",
		"second_item_half_price": "½",
		"third_item_free":        "🎁",
		"half_price":             "½",
		"discount":               "🏷️",
		"free":                   "🆓",
		"free_gift":              "🎁",
		"free_shipping":          "🚚",
	},
	model.ConceptItem: {
		"":        "📦",
		"counter": "🏪",
		"ticket":  "🎫",
	},
	model.ConceptModifier: {
		"":             "✨",
		"clearance":    "🏷️",
		"members_only": "🪪",
		"limited_time": "⏰",
	},
}

// palette gives each concept type a fixed card color
var palette = map[model.ConceptType]string{
	model.ConceptAction:   "#4FC3F7",
	model.ConceptQuantity: "#FFD54F",
	model.ConceptPayment:  "#81C784",
	model.ConceptBenefit:  "#F06292",
	model.ConceptItem:     "#FFB74D",
	model.ConceptModifier: "#BA68C8",
}

// synonyms lists card texts that stand for a concept value
var synonyms = map[string][]string{
	"buy":      {"buy", "purchase", "shop", "get"},
	"pay":      {"pay", "checkout", "pay now"},
	"take":     {"take", "grab", "pick up"},
	"free":     {"free", "no charge", "gratis"},
	"item":     {"item", "thing", "product"},
	"discount": {"discount", "sale", "cheaper"},
	"coupon":   {"coupon", "voucher"},
	"wait":     {"wait", "hold on"},
}
