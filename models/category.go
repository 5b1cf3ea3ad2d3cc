package models

import "strings"

// Category is the closed set of catalog groupings shown on the storefront.
type Category string

const (
	CategoryBulks       Category = "Bulks"
	CategoryLollies     Category = "Lollies"
	CategoryKulfi       Category = "Kulfi"
	CategoryKasata      Category = "Kasata"
	CategoryBalls       Category = "Balls"
	CategoryJumboRefill Category = "Jumbo Refill"
	CategoryBlackForest Category = "Black Forest"
	CategoryHalfLiter   Category = "1/2 Liters"
	CategoryOneLiter    Category = "1 Liter"
)

// CategoryOrder is the display order of category sections.
var CategoryOrder = []Category{
	CategoryBulks, CategoryLollies, CategoryKulfi, CategoryKasata,
	CategoryBalls, CategoryJumboRefill, CategoryBlackForest,
	CategoryHalfLiter, CategoryOneLiter,
}

type categoryRule struct {
	match    func(name string) bool
	category Category
}

func contains(sub string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, sub) }
}

func anyOf(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}
}

func allOf(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, sub := range subs {
			if !strings.Contains(name, sub) {
				return false
			}
		}
		return true
	}
}

// Rules are evaluated in order and the first match wins. Keywords overlap
// (e.g. "Jumbo Refill Balls" would hit the ball rule first), so the order
// is part of the contract.
var categoryRules = []categoryRule{
	{anyOf("bulk"), CategoryBulks},
	{allOf("big", "cup"), CategoryBulks},
	{contains("lollie"), CategoryLollies},
	{contains("kulfi"), CategoryKulfi},
	{anyOf("kasata", "swinger"), CategoryKasata},
	{contains("ball"), CategoryBalls},
	{allOf("jumbo", "refill"), CategoryJumboRefill},
	{contains("black forest"), CategoryBlackForest},
	{anyOf("1/2", "half"), CategoryHalfLiter},
	{anyOf("1 liter", "one liter"), CategoryOneLiter},
}

// Categorize assigns a product to a category by keyword match on its name.
// Names matching no rule fall back to Bulks.
func Categorize(productName string) Category {
	name := strings.ToLower(productName)
	for _, rule := range categoryRules {
		if rule.match(name) {
			return rule.category
		}
	}
	return CategoryBulks
}
