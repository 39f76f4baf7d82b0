package models

import (
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the direction of a transaction.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports if the kind is known.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Category classifies a transaction or budget.
type Category string

const (
	CategorySalary         Category = "salary"
	CategoryFreelance      Category = "freelance"
	CategoryInvestment     Category = "investment"
	CategoryOther          Category = "other"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryBills          Category = "bills"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
)

// Categories holds the categories that are valid for each kind.
var Categories = map[Kind][]Category{
	KindIncome: {
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryOther,
	},
	KindExpense: {
		CategoryFood,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBills,
		CategoryHealthcare,
		CategoryEducation,
		CategoryOther,
	},
}

// Allows reports if the category is valid for the kind.
func (k Kind) Allows(c Category) bool {
	return slices.Contains(Categories[k], c)
}

// DisplayName is the human readable name of the category.
func (c Category) DisplayName() string {
	// Casers are stateful and must not be shared
	return cases.Title(language.English).String(string(c))
}
