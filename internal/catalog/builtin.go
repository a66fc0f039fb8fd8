package catalog

import "github.com/ppiankov/contextboard/internal/model"

// Patterns are stored already normalized (lowercase, single spaces, no
// terminal punctuation) so exact matches score 1.0.
var builtin = []model.PromotionMapping{
	{
		ID:       "bogo_free",
		Patterns: []string{"buy one get one free", "buy 1 get 1 free", "bogo", "b1g1"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptAction, "buy"),
			model.NewQuantity(2),
			model.NewConcept(model.ConceptPayment, "pay_for_one"),
			model.NewConcept(model.ConceptBenefit, "second_item_free"),
		},
		Priority:    100,
		VisualHints: model.VisualHints{Layout: "sequence", Emphasis: []model.ConceptType{model.ConceptBenefit}},
	},
	{
		ID:       "bogo_half",
		Patterns: []string{"buy one get one half off", "buy one get one 50% off", "bogo half off"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptAction, "buy"),
			model.NewQuantity(2),
			model.NewConcept(model.ConceptPayment, "pay_for_one"),
			model.NewConcept(model.ConceptBenefit, "second_item_half_price"),
		},
		Priority:    90,
		VisualHints: model.VisualHints{Layout: "sequence", Emphasis: []model.ConceptType{model.ConceptBenefit}},
	},
	{
		ID:       "buy_two_get_one",
		Patterns: []string{"buy two get one free", "buy 2 get 1 free", "3 for 2", "three for two"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptAction, "buy"),
			model.NewQuantity(3),
			model.NewConcept(model.ConceptPayment, "pay_for_two"),
			model.NewConcept(model.ConceptBenefit, "third_item_free"),
		},
		Priority:    85,
		VisualHints: model.VisualHints{Layout: "sequence", Emphasis: []model.ConceptType{model.ConceptBenefit}},
	},
	{
		ID:       "two_for_one",
		Patterns: []string{"two for one", "2 for 1", "two for the price of one", "2 for the price of 1"},
		Concepts: []model.Concept{
			model.NewQuantity(2),
			model.NewConcept(model.ConceptPayment, "pay_for_one"),
		},
		Priority:    80,
		VisualHints: model.VisualHints{Layout: "sequence", Emphasis: []model.ConceptType{model.ConceptQuantity}},
	},
	{
		ID:       "half_price",
		Patterns: []string{"half price", "half off", "50% off", "fifty percent off"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptBenefit, "half_price"),
		},
		Priority:    70,
		VisualHints: model.VisualHints{Layout: "grid", Emphasis: []model.ConceptType{model.ConceptBenefit}},
	},
	{
		ID:       "percent_off_20",
		Patterns: []string{"20% off", "twenty percent off", "save 20%"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptBenefit, "discount"),
			model.NewConcept(model.ConceptModifier, "20_percent_off"),
		},
		Priority:    60,
		VisualHints: model.VisualHints{Layout: "grid", Emphasis: []model.ConceptType{model.ConceptModifier}},
	},
	{
		ID:       "free_gift",
		Patterns: []string{"free gift with purchase", "free gift"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptAction, "buy"),
			model.NewConcept(model.ConceptBenefit, "free_gift"),
		},
		Priority: 50,
	},
	{
		ID:       "free_shipping",
		Patterns: []string{"free shipping", "free delivery"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptBenefit, "free_shipping"),
		},
		Priority: 50,
	},
	{
		ID:       "clearance",
		Patterns: []string{"clearance sale", "everything must go", "clearance"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptModifier, "clearance"),
			model.NewConcept(model.ConceptBenefit, "discount"),
		},
		Priority: 40,
	},
	{
		ID:       "coupon",
		Patterns: []string{"with coupon", "coupon required", "use your coupon"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptPayment, "coupon"),
			model.NewConcept(model.ConceptBenefit, "discount"),
		},
		Priority: 40,
	},
	{
		ID:       "members_only",
		Patterns: []string{"members only", "loyalty members save", "with loyalty card"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptModifier, "members_only"),
			model.NewConcept(model.ConceptPayment, "loyalty_card"),
		},
		Priority: 30,
	},
	{
		ID:       "limited_time",
		Patterns: []string{"limited time offer", "today only", "while supplies last"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptModifier, "limited_time"),
		},
		Priority: 20,
	},
	{
		ID:       "pay_at_counter",
		Patterns: []string{"pay at the counter", "pay at checkout", "please pay at the register"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptAction, "pay"),
			model.NewConcept(model.ConceptItem, "counter"),
		},
		Priority: 10,
	},
	{
		ID:       "take_a_number",
		Patterns: []string{"take a number", "please take a number"},
		Concepts: []model.Concept{
			model.NewConcept(model.ConceptAction, "take"),
			model.NewConcept(model.ConceptItem, "ticket"),
		},
		Priority: 10,
	},
}
