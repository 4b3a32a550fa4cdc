package menu

import "github.com/shopspring/decimal"

// Pizza is an immutable priced item. The variant set is closed: the two
// fixed menu pizzas below plus custom pizzas assembled by Builder.
type Pizza struct {
	name  string
	price decimal.Decimal
}

func (p Pizza) Name() string { return p.name }

func (p Pizza) Price() decimal.Decimal { return p.price }

var (
	pepperoniPrice = decimal.NewFromInt(40)
	hawaiianPrice  = decimal.NewFromInt(50)
)

// Pepperoni returns the fixed-price pepperoni menu pizza.
func Pepperoni() Pizza { return Pizza{name: "Pepperoni Pizza", price: pepperoniPrice} }

// Hawaiian returns the fixed-price Hawaiian menu pizza.
func Hawaiian() Pizza { return Pizza{name: "Hawaiian Pizza", price: hawaiianPrice} }
