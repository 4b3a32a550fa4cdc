package menu

import "github.com/shopspring/decimal"

const customName = "Custom Pizza"

// Ingredient surcharges.
var (
	CheeseCost    = decimal.NewFromInt(10)
	PepperoniCost = decimal.NewFromInt(12)
	PineappleCost = decimal.NewFromInt(8)
)

// Builder accumulates ingredient surcharges into a custom pizza. The
// same ingredient may be added any number of times and each add counts
// in full. The builder stays usable after Build.
type Builder struct {
	price decimal.Decimal
}

func NewBuilder() *Builder {
	return &Builder{price: decimal.Zero}
}

func (b *Builder) AddCheese() *Builder {
	b.price = b.price.Add(CheeseCost)
	return b
}

func (b *Builder) AddPepperoni() *Builder {
	b.price = b.price.Add(PepperoniCost)
	return b
}

func (b *Builder) AddPineapple() *Builder {
	b.price = b.price.Add(PineappleCost)
	return b
}

// Build finalizes the accumulated ingredients into an immutable Pizza.
func (b *Builder) Build() Pizza {
	return Pizza{name: customName, price: b.price}
}
