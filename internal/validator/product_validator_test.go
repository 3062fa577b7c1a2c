package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProduct_Valid(t *testing.T) {
	in := ProductInput{Name: " Big Mick ", Price: 1200, Image: "bigmick", CategoryID: 1}

	out, issues := ValidateProduct(in)
	assert.Empty(t, issues)
	assert.Equal(t, "Big Mick", out.Name)
	assert.Equal(t, int64(1200), out.Price)
}

func TestValidateProduct_CollectsAllIssues(t *testing.T) {
	_, issues := ValidateProduct(ProductInput{})

	fields := make([]string, 0, len(issues))
	for _, is := range issues {
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{"name", "price", "category_id", "image"}, fields)
}

func TestValidateProduct_PriceMustBePositive(t *testing.T) {
	_, issues := ValidateProduct(ProductInput{Name: "Burger", Price: -100, Image: "x", CategoryID: 1})

	assert.Len(t, issues, 1)
	assert.Equal(t, "price", issues[0].Field)
}

func TestValidateSearchTerm(t *testing.T) {
	term, issues := ValidateSearchTerm("  burger ")
	assert.Empty(t, issues)
	assert.Equal(t, "burger", term)
}

func TestValidateSearchTerm_Empty(t *testing.T) {
	_, issues := ValidateSearchTerm("   ")
	assert.Len(t, issues, 1)
	assert.Equal(t, "search", issues[0].Field)
}
